package http

import (
	"net/http"

	"visus-api/internal/delivery/http/handler"
	"visus-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// MediaPrefix is the URL prefix local storage files are served under.
const MediaPrefix = "/media/"

type Router struct {
	router                 *mux.Router
	log                    *logrus.Logger
	doctorHandler          *handler.DoctorHandler
	serviceItemHandler     *handler.ServiceItemHandler
	reviewHandler          *handler.ReviewHandler
	mediaAssetHandler      *handler.MediaAssetHandler
	callbackRequestHandler *handler.CallbackRequestHandler
	uploadHandler          *handler.UploadHandler
	auditLogHandler        *handler.AuditLogHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
	metricsMiddleware      *middleware.MetricsMiddleware
	gatherer               prometheus.Gatherer
	mediaRoot              string
}

type RouterOptions struct {
	Log                    *logrus.Logger
	DoctorHandler          *handler.DoctorHandler
	ServiceItemHandler     *handler.ServiceItemHandler
	ReviewHandler          *handler.ReviewHandler
	MediaAssetHandler      *handler.MediaAssetHandler
	CallbackRequestHandler *handler.CallbackRequestHandler
	UploadHandler          *handler.UploadHandler
	AuditLogHandler        *handler.AuditLogHandler
	AuthMiddleware         *middleware.AuthMiddleware
	CORSMiddleware         *middleware.CORSMiddleware
	MetricsMiddleware      *middleware.MetricsMiddleware
	Gatherer               prometheus.Gatherer
	// MediaRoot is served under MediaPrefix when set (local storage mode).
	MediaRoot string
}

func NewRouter(opts RouterOptions) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		log:                    opts.Log,
		doctorHandler:          opts.DoctorHandler,
		serviceItemHandler:     opts.ServiceItemHandler,
		reviewHandler:          opts.ReviewHandler,
		mediaAssetHandler:      opts.MediaAssetHandler,
		callbackRequestHandler: opts.CallbackRequestHandler,
		uploadHandler:          opts.UploadHandler,
		auditLogHandler:        opts.AuditLogHandler,
		authMiddleware:         opts.AuthMiddleware,
		corsMiddleware:         opts.CORSMiddleware,
		metricsMiddleware:      opts.MetricsMiddleware,
		gatherer:               opts.Gatherer,
		mediaRoot:              opts.MediaRoot,
	}
}

func (r *Router) Setup() http.Handler {
	if r.metricsMiddleware != nil {
		r.router.Use(r.metricsMiddleware.Handle)
	}

	if r.gatherer != nil {
		r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	if r.mediaRoot != "" {
		files := http.StripPrefix(MediaPrefix, http.FileServer(http.Dir(r.mediaRoot)))
		r.router.PathPrefix(MediaPrefix).Handler(files).Methods(http.MethodGet, http.MethodHead)
	}

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Public content
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/services", r.serviceItemHandler.GetActiveServices).Methods(http.MethodGet)
	api.HandleFunc("/reviews", r.reviewHandler.GetAllReviews).Methods(http.MethodGet)
	api.HandleFunc("/media/{category}", r.mediaAssetHandler.GetMediaAssets).Methods(http.MethodGet)
	api.HandleFunc("/requests/callback", r.callbackRequestHandler.CreateCallbackRequest).Methods(http.MethodPost)

	// Admin routes (basic auth)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(handler.Preflight)

	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	admin.HandleFunc("/services", r.serviceItemHandler.GetAllServices).Methods(http.MethodGet)
	admin.HandleFunc("/services", r.serviceItemHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceItemHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceItemHandler.DeleteService).Methods(http.MethodDelete)

	admin.HandleFunc("/reviews", r.reviewHandler.GetAllReviews).Methods(http.MethodGet)
	admin.HandleFunc("/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)
	admin.HandleFunc("/reviews/{id}", r.reviewHandler.UpdateReview).Methods(http.MethodPut)
	admin.HandleFunc("/reviews/{id}", r.reviewHandler.DeleteReview).Methods(http.MethodDelete)

	admin.HandleFunc("/media/{category}", r.mediaAssetHandler.GetMediaAssets).Methods(http.MethodGet)
	admin.HandleFunc("/media/{category}", r.mediaAssetHandler.CreateMediaAsset).Methods(http.MethodPost)
	admin.HandleFunc("/media/{category}/{id}", r.mediaAssetHandler.UpdateMediaAsset).Methods(http.MethodPut)
	admin.HandleFunc("/media/{category}/{id}", r.mediaAssetHandler.DeleteMediaAsset).Methods(http.MethodDelete)

	admin.HandleFunc("/requests/callback", r.callbackRequestHandler.GetAllCallbackRequests).Methods(http.MethodGet)

	admin.HandleFunc("/upload", r.uploadHandler.Upload).Methods(http.MethodPost)
	admin.HandleFunc("/upload", r.uploadHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	var h http.Handler = r.router
	h = middleware.Recovery(r.log)(h)
	h = middleware.RequestLogger(r.log)(h)
	// CORS sits outermost so pre-flight requests are answered before routing.
	h = r.corsMiddleware.Handle(h)
	return h
}
