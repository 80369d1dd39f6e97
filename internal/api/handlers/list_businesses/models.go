package list_businesses

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/businesses/models"
)

// ToServiceRequest разбирает query параметры каталога
func ToServiceRequest(query url.Values) (*models.ListBusinessesRequest, error) {
	req := &models.ListBusinessesRequest{}

	if v := strings.TrimSpace(query.Get("search")); v != "" {
		req.Search = &v
	}
	if v := strings.TrimSpace(query.Get("category")); v != "" {
		req.Category = &v
	}

	var err error
	if req.MinPrice, err = optionalInt(query, "minPrice"); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = optionalInt(query, "maxPrice"); err != nil {
		return nil, err
	}

	if v := query.Get("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minRating: %w", err)
		}
		// NaN не проходит ни одно сравнение, поэтому проверка записана через отрицание
		if !(rating >= 0 && rating <= domain.MaxRating) {
			return nil, fmt.Errorf("invalid minRating: must be in 0..%d, got %s", domain.MaxRating, v)
		}
		req.MinRating = &rating
	}

	if v := query.Get("availableToday"); v != "" {
		req.AvailableToday, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid availableToday: %w", err)
		}
	}

	return req, nil
}

func optionalInt(query url.Values, key string) (*int, error) {
	v := query.Get(key)
	if v == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &n, nil
}
