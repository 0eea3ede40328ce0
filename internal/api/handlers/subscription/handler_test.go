package subscription

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkovridov/schedcore/internal/api/dto"
	mocks "github.com/mkovridov/schedcore/internal/mocks/api/handlers/subscription"
	leasesvc "github.com/mkovridov/schedcore/internal/service/lease"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocksubscriptionService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocksubscriptionService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func TestHandler_Add_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.SubscriptionRequest{ChannelID: "chan-1", TopicID: "UCtest"}
	bodyBytes, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		AddConsumer(gomock.Any(), "chan-1", "UCtest").
		Return(nil)

	handler.Add(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Add_HandshakeFailure(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.SubscriptionRequest{ChannelID: "chan-1", TopicID: "UCtest"}
	bodyBytes, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		AddConsumer(gomock.Any(), "chan-1", "UCtest").
		Return(errors.New("subscribe to hub: hub returned 400"))

	handler.Add(c)

	assert.Equal(t, http.StatusBadGateway, w.Result().StatusCode)
}

func TestHandler_Add_MissingFields(t *testing.T) {
	handler, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.SubscriptionRequest{ChannelID: "chan-1"})

	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Add(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Remove_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/subscriptions?channel_id=chan-1&topic_id=UCtest", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		RemoveConsumer(gomock.Any(), "chan-1", "UCtest").
		Return(nil)

	handler.Remove(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Remove_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/subscriptions?channel_id=chan-1&topic_id=UCtest", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		RemoveConsumer(gomock.Any(), "chan-1", "UCtest").
		Return(leasesvc.ErrSubscriptionNotFound)

	handler.Remove(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
