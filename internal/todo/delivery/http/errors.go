package http

import (
	"errors"
	"net/http"

	"github.com/rainerkim/ai-todo-manager/internal/todo"
	pkgErrors "github.com/rainerkim/ai-todo-manager/pkg/errors"
	"github.com/rainerkim/ai-todo-manager/pkg/gemini"
)

// mapError translates domain and upstream errors into HTTP errors with
// user-facing messages. Upstream failures are classified by the structured
// kind from the Gemini client, never by matching message strings here.
func (h *handler) mapError(err error) error {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case gemini.ErrorKindAuth:
			return pkgErrors.NewHTTPError(http.StatusInternalServerError,
				"AI 서비스 인증 오류가 발생했습니다. API 키를 확인해주세요.")
		case gemini.ErrorKindQuota:
			return pkgErrors.NewHTTPError(http.StatusTooManyRequests,
				"AI 서비스 사용량이 초과되었습니다. 잠시 후 다시 시도해주세요.")
		default:
			return pkgErrors.NewHTTPError(http.StatusInternalServerError,
				"AI 분석 중 오류가 발생했습니다. 다시 시도해주세요.")
		}
	}

	switch {
	case errors.Is(err, todo.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "입력 텍스트가 필요합니다.")
	case errors.Is(err, todo.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "서비스 설정이 완료되지 않았습니다.")
	case errors.Is(err, todo.ErrUnparsableResponse):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "AI 응답을 처리하는 중 오류가 발생했습니다.")
	case errors.Is(err, todo.ErrTodoNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "할 일을 찾을 수 없습니다.")
	case errors.Is(err, todo.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "요청을 처리하는 중 오류가 발생했습니다.")
	}
}
