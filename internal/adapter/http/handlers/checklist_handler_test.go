package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raisilvacor/clinicadomobile/internal/adapter/http/handlers/mocks"
	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChecklistHandler_CreateChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists", h.CreateChecklist)

		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		uc.EXPECT().
			CreateChecklist(gomock.Any(), "rep-1", entities.ChecklistTypeInicial, gomock.Any(), gomock.Any()).
			Return(entities.Checklist{ID: "cl-1", Type: entities.ChecklistTypeInicial, RepairID: "rep-1"}, nil)

		r := gin.New()
		r.POST("/v1/checklists", h.CreateChecklist)

		body := `{"repair_id":"rep-1","type":"inicial","tests":{"test_before_screen":true},"photos":{"imei_photo":"/assets/imei.png"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown repair maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		uc.EXPECT().
			CreateChecklist(gomock.Any(), "missing", entities.ChecklistTypeInicial, gomock.Any(), gomock.Any()).
			Return(entities.Checklist{}, usecase.ErrRepairNotFound)

		r := gin.New()
		r.POST("/v1/checklists", h.CreateChecklist)

		body := `{"repair_id":"missing","type":"inicial"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid type maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		uc.EXPECT().
			CreateChecklist(gomock.Any(), "rep-1", entities.ChecklistType("parcial"), gomock.Any(), gomock.Any()).
			Return(entities.Checklist{}, usecase.ErrInvalidChecklistType)

		r := gin.New()
		r.POST("/v1/checklists", h.CreateChecklist)

		body := `{"repair_id":"rep-1","type":"parcial"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestChecklistHandler_ListChecklists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filtered by repair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		uc.EXPECT().ListByRepair(gomock.Any(), "rep-1").Return([]entities.Checklist{{ID: "cl-1", RepairID: "rep-1"}}, nil)

		r := gin.New()
		r.GET("/v1/checklists", h.ListChecklists)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists?repair_id=rep-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshaling response: %v", err)
		}
		if len(resp) != 1 || resp[0]["id"] != "cl-1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("unfiltered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		uc.EXPECT().ListChecklists(gomock.Any()).Return([]entities.Checklist{}, nil)

		r := gin.New()
		r.GET("/v1/checklists", h.ListChecklists)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestChecklistHandler_AttachSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		uc.EXPECT().
			AttachSignature(gomock.Any(), "cl-1", "/assets/sig.png").
			Return(entities.Checklist{ID: "cl-1", Signature: "/assets/sig.png"}, nil)

		r := gin.New()
		r.POST("/v1/checklists/:id/signature", h.AttachSignature)

		body := `{"signature":"/assets/sig.png"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checklists/cl-1/signature", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshaling response: %v", err)
		}
		if resp["signed"] != true {
			t.Fatalf("expected signed=true, got %v", resp)
		}
	})

	t.Run("empty signature rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists/:id/signature", h.AttachSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/checklists/cl-1/signature", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestChecklistHandler_DeleteChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIChecklistUseCase(ctrl)
	h := NewChecklistHandler(uc)

	uc.EXPECT().DeleteChecklist(gomock.Any(), "cl-1").Return(nil)

	r := gin.New()
	r.DELETE("/v1/checklists/:id", h.DeleteChecklist)

	req := httptest.NewRequest(http.MethodDelete, "/v1/checklists/cl-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
