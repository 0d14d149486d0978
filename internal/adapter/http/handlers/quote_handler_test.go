package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradeportal/internal/adapter/http/handlers/mocks"
	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"
	"tradeportal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testTradesperson = usecase.Actor{UserID: "tp-1", Role: entities.RoleTradesperson, Tier: entities.TierBasic}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := actorRouter(testTradesperson)
		r.POST("/v1/jobs/:job_id/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), testTradesperson, gomock.Any()).DoAndReturn(
			func(_ any, _ usecase.Actor, in usecase.CreateQuoteInput) (entities.Quote, error) {
				if in.JobID != "job-1" || in.Price != 250 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Quote{ID: "quote-1", JobID: "job-1"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quotes", bytes.NewBufferString(`{"price":250}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("customer forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := actorRouter(testCustomer)
		r.POST("/v1/jobs/:job_id/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteForbidden)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/quotes", bytes.NewBufferString(`{"price":250}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_CreateTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limit exceeded includes usage details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := actorRouter(testTradesperson)
		r.POST("/v1/quote-templates", h.CreateTemplate)

		uc.EXPECT().CreateTemplate(gomock.Any(), testTradesperson, gomock.Any()).
			Return(entities.QuoteTemplate{}, &usecase.TemplateLimitError{Used: 5, Limit: 5})

		body := `{"category":"boiler-service","unit":"hour","default_quantity":1,"unit_price":60}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-templates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var resp pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if resp.Code != "LIMIT_EXCEEDED" {
			t.Fatalf("expected LIMIT_EXCEEDED code, got %s", resp.Code)
		}
		if resp.Details["used"] != float64(5) || resp.Details["limit"] != float64(5) {
			t.Fatalf("expected used/limit details, got %v", resp.Details)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := actorRouter(testTradesperson)
		r.POST("/v1/quote-templates", h.CreateTemplate)

		uc.EXPECT().CreateTemplate(gomock.Any(), testTradesperson, gomock.Any()).DoAndReturn(
			func(_ any, _ usecase.Actor, in usecase.CreateTemplateInput) (entities.QuoteTemplate, error) {
				if in.Scope != entities.ScopePersonal {
					t.Fatalf("expected personal scope default, got %s", in.Scope)
				}
				return entities.QuoteTemplate{ID: "tpl-1", Category: in.Category}, nil
			})

		body := `{"category":"boiler-service","unit":"hour","default_quantity":1,"unit_price":60,"vat_rate":20}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-templates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid input mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := actorRouter(testTradesperson)
		r.POST("/v1/quote-templates", h.CreateTemplate)

		uc.EXPECT().CreateTemplate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.QuoteTemplate{}, usecase.ErrInvalidTemplateInput)

		body := `{"category":"boiler-service","unit":"hour","unit_price":60}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-templates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DeleteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := actorRouter(testTradesperson)
	r.DELETE("/v1/quote-templates/:template_id", h.DeleteTemplate)

	uc.EXPECT().DeleteTemplate(gomock.Any(), testTradesperson, "tpl-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/quote-templates/tpl-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
