package handler

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/storelink-dev/backoffice/backend/internal/config"
	"github.com/storelink-dev/backoffice/backend/internal/domain"
	"github.com/storelink-dev/backoffice/backend/internal/repository"
	"github.com/storelink-dev/backoffice/backend/internal/schedule"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	// 排班账本是进程内的可变集合，账本本身假定单写者，
	// 由 mu 把 HTTP 层的并发请求串行化成单写者
	ledgerMu       sync.Mutex
	catalog        *schedule.Catalog
	scheduleLedger *schedule.Ledger
	vacationLedger *schedule.VacationLedger

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	roster := repo.Roster()
	catalog := schedule.DefaultCatalog()

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		catalog:        catalog,
		scheduleLedger: schedule.NewLedger(catalog, roster),
		vacationLedger: schedule.NewVacationLedger(roster),

		Mux: chi.NewRouter(),
	}, nil
}

var managerRoles = []domain.Role{domain.RoleManager, domain.RoleHQAdmin}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole(managerRoles)).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole(managerRoles)).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole(managerRoles)).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole(managerRoles)).Patch("/password", h.UpdateUserPassword)
			})
		})

		// 花名册（排班核心只读花名册，增删改走这里）
		r.Route("/staffs", func(r chi.Router) {
			r.With(h.RequiredRole(managerRoles)).Post("/", h.CreateStaff)
			r.Get("/", h.GetAllStaffs)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffInfo)
				r.Get("/", h.GetStaffInfo)
				r.With(h.RequiredRole(managerRoles)).Patch("/", h.UpdateStaff)
				r.With(h.RequiredRole(managerRoles)).Delete("/", h.DeleteStaff)
			})
		})

		// 班次模板目录是启动时加载的配置，只读
		r.Route("/shift-templates", func(r chi.Router) {
			r.Get("/", h.ListShiftTemplates)
			r.Get("/{kind}", h.GetShiftTemplate)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.With(h.RequiredRole(managerRoles)).Post("/", h.CreateSchedule)
			r.Get("/", h.ListSchedules)
			r.Get("/week", h.GetScheduleWeek)
			r.Get("/stats", h.GetScheduleStats)
			r.Route("/{id}", func(r chi.Router) {
				r.With(h.RequiredRole(managerRoles)).Patch("/", h.UpdateSchedule)
				r.With(h.RequiredRole(managerRoles)).Delete("/", h.DeleteSchedule)
				r.Post("/attendance", h.RecordAttendance)
			})
		})

		r.Route("/vacations", func(r chi.Router) {
			r.Post("/", h.RequestVacation)
			r.Get("/", h.ListVacations)
			r.With(h.RequiredRole(managerRoles)).With(h.myInfo).Post("/{id}/decision", h.DecideVacation)
			r.With(h.RequiredRole(managerRoles)).Delete("/{id}", h.DeleteVacation)
		})

		r.Route("/notices", func(r chi.Router) {
			r.With(h.RequiredRole(managerRoles)).With(h.myInfo).Post("/", h.CreateNotice)
			r.Get("/", h.GetAllNotices)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.noticeInfo)
				r.Get("/", h.GetNotice)
				r.With(h.RequiredRole(managerRoles)).Patch("/", h.UpdateNotice)
				r.With(h.RequiredRole(managerRoles)).Delete("/", h.DeleteNotice)
			})
		})
	})
}
