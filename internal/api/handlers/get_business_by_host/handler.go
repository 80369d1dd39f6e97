package get_business_by_host

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses"
)

const (
	msgNoSubdomain = "в адресе нет поддомена бизнеса"
	msgNotFound    = "бизнес не найден"
)

type Handler struct {
	service    BusinessService
	rootDomain string
	logger     Logger
}

// NewHandler rootDomain - корневой домен маркетплейса; пустая строка отключает проверку домена
func NewHandler(service BusinessService, rootDomain string, logger Logger) *Handler {
	return &Handler{
		service:    service,
		rootDomain: rootDomain,
		logger:     logger,
	}
}

// Handle GET /api/v1/businesses/by-host
// Бизнес определяется по поддомену из заголовка Host: fade.salons.ru -> fade
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	host := r.Host

	subdomain := middleware.ExtractSubdomain(host)
	if subdomain == "" || !middleware.BelongsToDomain(host, h.rootDomain) {
		h.logger.Warn("GET /businesses/by-host - No business subdomain: host=%s", host)
		handlers.RespondNotFound(w, msgNoSubdomain)
		return
	}

	business, err := h.service.GetBySubdomain(r.Context(), subdomain)
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/by-host - Business not found: subdomain=%s", subdomain)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /businesses/by-host - Failed to get business: subdomain=%s, error=%v", subdomain, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/by-host - Business resolved: subdomain=%s, business_id=%s", subdomain, business.ID)
	handlers.RespondJSON(w, http.StatusOK, business)
}
