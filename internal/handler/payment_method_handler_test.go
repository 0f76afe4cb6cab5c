package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/payment-fee-estimator/internal/database"
	"github.com/anyulbade/payment-fee-estimator/internal/dto"
	"github.com/anyulbade/payment-fee-estimator/internal/repository"
)

func TestPaymentMethodHandler_CreateAndGet(t *testing.T) {
	router := setupRouter(t, seededStore())

	w := doJSON(router, "POST", "/api/v1/payment-methods",
		fmt.Sprintf(`{"name":"Virtual on EUR card","type":"VIRTUALCARD","service":"OPENCOLLECTIVE","source_payment_method_id":%q}`, eurCardID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.PaymentMethodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, eurCardID, created.SourcePaymentMethodID)

	w = doJSON(router, "GET", "/api/v1/payment-methods/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.PaymentMethodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Virtual on EUR card", fetched.Name)

	w = doJSON(router, "GET", "/api/v1/payment-methods/"+created.ID+"/fees?amount=1000&currency=EUR", "")
	require.Equal(t, http.StatusOK, w.Code)
	var est dto.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
	assert.InDelta(t, 44.0, est.Fee, 1e-9)
}

func TestPaymentMethodHandler_CreateRejected(t *testing.T) {
	router := setupRouter(t, seededStore())

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"type":"CREDITCARD"}`},
		{"no category", `{"name":"blank"}`},
		{"lowercase currency", `{"name":"x","type":"CREDITCARD","currency":"eur"}`},
		{"long country", `{"name":"x","type":"CREDITCARD","country":"DEU"}`},
		{"bad source id", `{"name":"x","type":"VIRTUALCARD","source_payment_method_id":"nope"}`},
		{"unknown source", fmt.Sprintf(`{"name":"x","type":"VIRTUALCARD","source_payment_method_id":%q}`, unknownID)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/api/v1/payment-methods", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestPaymentMethodHandler_Get(t *testing.T) {
	router := setupRouter(t, seededStore())

	assert.Equal(t, http.StatusBadRequest, doJSON(router, "GET", "/api/v1/payment-methods/xyz", "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, "GET", "/api/v1/payment-methods/"+unknownID, "").Code)
}

func TestPaymentMethodHandler_List(t *testing.T) {
	router := setupRouter(t, seededStore())

	w := doJSON(router, "GET", "/api/v1/payment-methods?page=2&page_size=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []dto.PaymentMethodResponse `json:"data"`
		Pagination dto.Pagination              `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, paypalID, resp.Data[0].ID)
	assert.Equal(t, 3, resp.Pagination.TotalItems)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

// Integration test: requires running database
func TestPaymentMethodHandler_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := getTestPool(t)
	if pool == nil {
		t.Skip("no database available")
	}
	defer pool.Close()

	database.MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { database.MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	_ = database.RollbackMigrations(dbURL)
	require.NoError(t, database.RunMigrations(dbURL))
	require.NoError(t, database.SeedData(context.Background(), pool))
	t.Cleanup(func() { _ = database.RollbackMigrations(dbURL) })

	router := setupRouter(t, repository.NewPaymentMethodRepository(pool))

	w := doJSON(router, "GET", "/api/v1/payment-methods?page_size=100", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data []dto.PaymentMethodResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.NotEmpty(t, list.Data)

	byName := make(map[string]dto.PaymentMethodResponse)
	for _, pm := range list.Data {
		byName[pm.Name] = pm
	}

	t.Run("virtual card follows its EUR source", func(t *testing.T) {
		pm, ok := byName["Virtual card on EUR card"]
		require.True(t, ok)

		w := doJSON(router, "GET", "/api/v1/payment-methods/"+pm.ID+"/fees?amount=1000&currency=EUR", "")
		require.Equal(t, http.StatusOK, w.Code)
		var est dto.EstimateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
		assert.InDelta(t, 44.0, est.Fee, 1e-9)
		assert.True(t, est.IsExact)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/v1/payment-methods", `{"name":"PayPal account","service":"PAYPAL"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
