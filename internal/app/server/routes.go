package server

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	authlogin "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/auth/login"
	authregister "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/auth/register"
	clientcreate "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/client/create"
	clientlist "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/client/list"
	clientread "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/client/read"
	clienttoggle "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/client/togglestatus"
	emailcreate "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/email/create"
	emaillist "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/email/list"
	emailremove "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/email/remove"
	providercreate "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/provider/create"
	providerlist "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/provider/list"
	providerread "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/provider/read"
	servicecreate "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/service/create"
	servicelist "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/service/list"
	serviceread "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/service/read"
	servicesendmail "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/service/sendmail"
	serviceupdateemails "github.com/Aaryashkc/Client-domain-management/internal/http/handlers/service/updateemails"
	"github.com/Aaryashkc/Client-domain-management/internal/http/middlewarectx"
	authservice "github.com/Aaryashkc/Client-domain-management/internal/services/auth"
	clientservice "github.com/Aaryashkc/Client-domain-management/internal/services/client"
	emailservice "github.com/Aaryashkc/Client-domain-management/internal/services/email"
	providerservice "github.com/Aaryashkc/Client-domain-management/internal/services/provider"
	senderservice "github.com/Aaryashkc/Client-domain-management/internal/services/sender"
	serviceservice "github.com/Aaryashkc/Client-domain-management/internal/services/service"
)

// RegisterRoutes registers all application routes.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	authService *authservice.AuthService,
	clientService *clientservice.ClientService,
	providerService *providerservice.ProviderService,
	serviceService *serviceservice.ServiceService,
	emailService *emailservice.EmailService,
	senderService *senderservice.SenderService,
) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Open endpoints
		r.Post("/register", authregister.New(logger, authService).ServeHTTP)
		r.Post("/login", authlogin.New(logger, authService).ServeHTTP)

		// JWT protected group
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/clients", clientcreate.New(logger, clientService).ServeHTTP)
			r.Get("/clients", clientlist.New(logger, clientService).ServeHTTP)
			r.Get("/clients/{id}", clientread.New(logger, clientService).ServeHTTP)
			r.Patch("/clients/{id}/toggle-status", clienttoggle.New(logger, clientService).ServeHTTP)

			r.Post("/providers", providercreate.New(logger, providerService).ServeHTTP)
			r.Get("/providers", providerlist.New(logger, providerService).ServeHTTP)
			r.Get("/providers/{id}", providerread.New(logger, providerService).ServeHTTP)

			r.Post("/services", servicecreate.New(logger, serviceService).ServeHTTP)
			r.Get("/services", servicelist.New(logger, serviceService).ServeHTTP)
			r.Get("/services/{id}", serviceread.New(logger, serviceService).ServeHTTP)
			r.Put("/services/{id}/emails", serviceupdateemails.New(logger, serviceService).ServeHTTP)
			r.Post("/services/{id}/send-email", servicesendmail.New(logger, senderService).ServeHTTP)

			r.Post("/emails", emailcreate.New(logger, emailService).ServeHTTP)
			r.Get("/emails", emaillist.New(logger, emailService).ServeHTTP)
			r.Delete("/emails/{id}", emailremove.New(logger, emailService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
