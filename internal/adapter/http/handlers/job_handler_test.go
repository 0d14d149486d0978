package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradeportal/internal/adapter/http/handlers/mocks"
	"tradeportal/internal/adapter/http/middleware"
	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func actorRouter(actor usecase.Actor) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ActorKey, actor)
		c.Next()
	})
	return r
}

var testCustomer = usecase.Actor{UserID: "cust-1", Role: entities.RoleCustomer}

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(testCustomer)
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(testCustomer)
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().Create(gomock.Any(), testCustomer, gomock.Any()).DoAndReturn(
			func(_ any, _ usecase.Actor, in usecase.CreateJobInput) (entities.Job, error) {
				if in.Title != "Boiler repair" || in.Postcode != "LS1 4AP" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Job{ID: "job-1", Status: entities.JobStatusOpen}, nil
			})

		body := `{"title":"Boiler repair","service_type":"plumbing","urgency":"urgent","location":{"postcode":"LS1 4AP","town":"Leeds"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("forbidden mapped to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(usecase.Actor{UserID: "tp-1", Role: entities.RoleTradesperson})
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrJobForbidden)

		body := `{"title":"Boiler repair","service_type":"plumbing","urgency":"urgent","location":{"postcode":"LS1 4AP"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if resp["code"] != "FORBIDDEN" {
			t.Fatalf("expected FORBIDDEN code, got %v", resp["code"])
		}
	})
}

func TestJobHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(testCustomer)
		r.POST("/v1/jobs/:job_id/complete", h.CompleteJob)

		uc.EXPECT().Complete(gomock.Any(), testCustomer, "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(testCustomer)
		r.POST("/v1/jobs/:job_id/cancel", h.CancelJob)

		uc.EXPECT().Cancel(gomock.Any(), testCustomer, "job-1").Return(entities.Job{}, usecase.ErrInvalidJobStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found mapped to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(testCustomer)
		r.GET("/v1/jobs/:job_id", h.GetJob)

		uc.EXPECT().GetByID(gomock.Any(), testCustomer, "job-x").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobHandler_DeleteJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	admin := usecase.Actor{UserID: "adm-1", Role: entities.RoleAdmin}
	r := actorRouter(admin)
	r.DELETE("/v1/jobs/:job_id", h.DeleteJob)

	uc.EXPECT().Delete(gomock.Any(), admin, "job-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestJobHandler_AcceptQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(testCustomer)
		r.POST("/v1/jobs/:job_id/accept-quote", h.AcceptQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/accept-quote", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := actorRouter(testCustomer)
		r.POST("/v1/jobs/:job_id/accept-quote", h.AcceptQuote)

		uc.EXPECT().AcceptQuote(gomock.Any(), testCustomer, "job-1", "quote-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusAssigned, TradespersonID: "tp-9"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/accept-quote", bytes.NewBufferString(`{"quote_id":"quote-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["tradesperson_id"] != "tp-9" {
			t.Fatalf("expected assigned tradesperson in response, got %v", resp["tradesperson_id"])
		}
	})
}
