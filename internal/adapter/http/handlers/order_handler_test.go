package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/adapter/http/handlers/mocks"
	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_EmitOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("emitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		ab := mocks.NewMockIAbandonmentUseCase(ctrl)
		h := NewOrderHandler(uc, ab)

		uc.EXPECT().
			EmitOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.EmitOrderInput) (entities.Order, error) {
				if in.RepairID != "rep-1" || in.EmittedBy != "Raí Silva" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Order{ID: "or-1", RepairID: "rep-1", EmittedAt: time.Now()}, nil
			})

		r := gin.New()
		r.POST("/v1/repairs/:id/order", h.EmitOrder)

		body := `{"emitted_by":"Raí Silva","observations":"Entregue"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/repairs/rep-1/order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshaling response: %v", err)
		}
		if notice, _ := resp["storage_fee_notice"].(string); !strings.Contains(notice, "90 dias") {
			t.Fatalf("expected storage fee notice, got %v", resp)
		}
	})

	t.Run("empty body is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		ab := mocks.NewMockIAbandonmentUseCase(ctrl)
		h := NewOrderHandler(uc, ab)

		uc.EXPECT().
			EmitOrder(gomock.Any(), usecase.EmitOrderInput{RepairID: "rep-1"}).
			Return(entities.Order{ID: "or-1", RepairID: "rep-1"}, nil)

		r := gin.New()
		r.POST("/v1/repairs/:id/order", h.EmitOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/repairs/rep-1/order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("gate refusals map to 409", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
		}{
			{"not completed", usecase.ErrRepairNotCompleted},
			{"missing conclusion checklist", usecase.ErrMissingConclusionChecklist},
			{"already emitted", usecase.ErrOrderAlreadyEmitted},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIOrderUseCase(ctrl)
				ab := mocks.NewMockIAbandonmentUseCase(ctrl)
				h := NewOrderHandler(uc, ab)

				uc.EXPECT().EmitOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, tc.err)

				r := gin.New()
				r.POST("/v1/repairs/:id/order", h.EmitOrder)

				req := httptest.NewRequest(http.MethodPost, "/v1/repairs/rep-1/order", nil)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusConflict {
					t.Fatalf("expected 409, got %d", w.Code)
				}
			})
		}
	})

	t.Run("unsigned checklists carry the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		ab := mocks.NewMockIAbandonmentUseCase(ctrl)
		h := NewOrderHandler(uc, ab)

		uc.EXPECT().EmitOrder(gomock.Any(), gomock.Any()).Return(entities.Order{},
			&usecase.UnsignedChecklistsError{Types: []entities.ChecklistType{entities.ChecklistTypeInicial}})

		r := gin.New()
		r.POST("/v1/repairs/:id/order", h.EmitOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/repairs/rep-1/order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Checklist Antifraude Inicial") {
			t.Fatalf("expected the checklist name in the body, got %s", w.Body.String())
		}
	})

	t.Run("payment failure maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		ab := mocks.NewMockIAbandonmentUseCase(ctrl)
		h := NewOrderHandler(uc, ab)

		uc.EXPECT().EmitOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrPickupPaymentFailed)

		r := gin.New()
		r.POST("/v1/repairs/:id/order", h.EmitOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/repairs/rep-1/order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrderByRepair(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	ab := mocks.NewMockIAbandonmentUseCase(ctrl)
	h := NewOrderHandler(uc, ab)

	uc.EXPECT().GetOrderByRepair(gomock.Any(), "rep-1").Return(entities.Order{}, usecase.ErrOrderNotFound)

	r := gin.New()
	r.GET("/v1/repairs/:id/order", h.GetOrderByRepair)

	req := httptest.NewRequest(http.MethodGet, "/v1/repairs/rep-1/order", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOrderHandler_ListAbandonmentAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	ab := mocks.NewMockIAbandonmentUseCase(ctrl)
	h := NewOrderHandler(uc, ab)

	ab.EXPECT().ListAbandonmentAlerts(gomock.Any()).Return([]entities.AbandonmentAlert{
		{RepairID: "rep-1", DaysSince: 61, DaysRemaining: 0, Level: entities.AlertLevelCritical},
	}, nil)

	r := gin.New()
	r.GET("/v1/alerts/abandonment", h.ListAbandonmentAlerts)

	req := httptest.NewRequest(http.MethodGet, "/v1/alerts/abandonment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if len(resp) != 1 || resp[0]["level"] != "critical" {
		t.Fatalf("unexpected response: %v", resp)
	}
}
