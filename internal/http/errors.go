package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/i18n"
	"github.com/expedibox/colis-service/internal/repository"
)

// respondError translates service and repository errors into API responses.
// Validation errors carry their own message; storage sentinels map to the
// matching status and translated message.
func respondError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	switch {
	case errors.As(err, &validationErr):
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, repository.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, repository.ErrCategoryInUse):
		builder.ErrorWithCode(http.StatusConflict, dto.ErrCodeCategoryInUse, i18n.ErrKeyCategoryInUse, err)
	case errors.Is(err, repository.ErrDuplicateTracking):
		builder.Error(http.StatusConflict, i18n.ErrKeyDuplicateTracking, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// pathID parses the :id path parameter.
func pathID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
