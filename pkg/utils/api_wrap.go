package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Field   string      `json:"field,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors to HTTP responses.
// Validation errors carry the localized message entered by the service;
// everything else maps to a fixed localized text per sentinel.
func HandleServiceError(c *gin.Context, err error) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: fieldErr.Message,
			Field:   fieldErr.Field,
			TraceID: traceID(c),
		})
		return
	}

	switch {
	case errors.Is(err, ErrAdNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrCountryNotFound),
		errors.Is(err, ErrStateNotFound),
		errors.Is(err, ErrCityNotFound),
		errors.Is(err, ErrPackageNotFound),
		errors.Is(err, ErrPaymentMethodNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrStoreNotFound),
		errors.Is(err, ErrAdSenseNotFound),
		errors.Is(err, ErrSettingNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "البريد الإلكتروني أو كلمة المرور غير صحيحة")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "البريد الإلكتروني مسجل مسبقاً")
	case errors.Is(err, ErrDuplicateRecord):
		RespondError(c, http.StatusConflict, "السجل موجود مسبقاً")
	case errors.Is(err, ErrProofFileMissing):
		RespondError(c, http.StatusBadRequest, "يرجى إرفاق إثبات الدفع")
	case errors.Is(err, ErrUnsupportedFileType):
		RespondError(c, http.StatusBadRequest, "نوع الملف غير مدعوم. المسموح به: صور أو PDF")
	case errors.Is(err, ErrTransferDetailsRequired):
		RespondError(c, http.StatusBadRequest, "يرجى إدخال رقم المرجع وتاريخ التحويل")
	case errors.Is(err, ErrInvalidPrice):
		RespondError(c, http.StatusBadRequest, "صيغة السعر غير صحيحة")
	case errors.Is(err, ErrNoPaymentMethods):
		RespondError(c, http.StatusBadRequest, "يجب اختيار طريقة دفع واحدة على الأقل")
	case errors.Is(err, ErrPaymentMethodMismatch):
		RespondError(c, http.StatusBadRequest, "بعض طرق الدفع المختارة غير صالحة")
	case errors.Is(err, ErrVIPRequired):
		RespondError(c, http.StatusForbidden, "هذه الصفحة متاحة فقط للأعضاء VIP")
	case errors.Is(err, ErrVIPExpired):
		RespondError(c, http.StatusForbidden, "انتهت صلاحية اشتراك VIP")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "حدث خطأ أثناء حفظ البيانات")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "حدث خطأ غير متوقع")
	}
}
