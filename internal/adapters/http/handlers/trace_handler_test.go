package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
	"github.com/jsamuelsen11/property-manager/mocks"
)

func newTraceHandler(t *testing.T) (*handlers.TraceHandler, *mocks.MockPropertyTraceRepository) {
	t.Helper()
	repo := mocks.NewMockPropertyTraceRepository(t)
	return handlers.NewTraceHandler(repo), repo
}

func TestListTraces_Success(t *testing.T) {
	t.Parallel()
	h, repo := newTraceHandler(t)

	repo.EXPECT().GetByProperty(mock.Anything, "1").Return(domain.OK([]trace.Trace{validTrace()}))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/properties/1/traces", nil), map[string]string{"propertyId": "1"})
	h.ListTraces(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[dto.TraceResponse]](t, rec)
	if resp.Count != 1 || resp.Items[0].Name != "Venta" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateTrace_ZeroTax(t *testing.T) {
	t.Parallel()
	h, repo := newTraceHandler(t)

	created := validTrace()
	repo.EXPECT().Create(mock.Anything, trace.CreateRequest{
		PropertyID: "1", DateSale: "2024-01-15", Name: "Venta", Value: 150000, Tax: 0,
	}).Return(domain.OK(&created))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/1/traces",
		bytes.NewBufferString(`{"dateSale":"2024-01-15","name":"Venta","value":150000,"tax":0}`))
	req = withChiParams(req, map[string]string{"propertyId": "1"})
	h.CreateTrace(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TraceResponse](t, rec)
	if resp.Tax != 0 || resp.Value != 150000 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateTrace_ServiceRejectsNegativeTax(t *testing.T) {
	t.Parallel()
	h, repo := newTraceHandler(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.Fail[*trace.Trace](domain.NewValidationError(trace.CodeInvalidTax, trace.MsgInvalidTax)))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/1/traces",
		bytes.NewBufferString(`{"dateSale":"2024-01-15","name":"Venta","value":1,"tax":-1}`))
	req = withChiParams(req, map[string]string{"propertyId": "1"})
	h.CreateTrace(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireProblemCode(t, rec, trace.CodeInvalidTax)
}

func TestUpdateTrace_Success(t *testing.T) {
	t.Parallel()
	h, repo := newTraceHandler(t)

	updated := validTrace()
	repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(r trace.UpdateRequest) bool {
		return r.PropertyID == "1" && r.ID == "20" && r.Tax != nil && *r.Tax == 0 && r.Value == nil
	})).Return(domain.OK(&updated))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/1/traces/20", bytes.NewBufferString(`{"tax":0}`))
	req = withChiParams(req, map[string]string{"propertyId": "1", "id": "20"})
	h.UpdateTrace(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteTrace_NotFound(t *testing.T) {
	t.Parallel()
	h, repo := newTraceHandler(t)

	repo.EXPECT().Delete(mock.Anything, "1", "404").
		Return(domain.Fail[domain.Empty](domain.NewError(domain.ErrNotFound, "HTTP_CLIENT_ERROR", "Trace not found")))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/properties/1/traces/404", nil),
		map[string]string{"propertyId": "1", "id": "404"})
	h.DeleteTrace(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
