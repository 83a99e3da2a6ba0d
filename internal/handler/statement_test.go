package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labstack/echo/v4"
)

func TestClientStatement(t *testing.T) {
	h, e := newClientFixture()

	c, rec := jsonReq(e, http.MethodGet, "/clients/1/statement", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.ClientStatement(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "بيانات الزبون")
	assert.Contains(t, body, "أحمد محمد علي") // record name from the store
	assert.Contains(t, body, "تم الطباعة في")
}

func TestClientStatement_NotFound(t *testing.T) {
	h, e := newClientFixture()

	c, rec := jsonReq(e, http.MethodGet, "/clients/404/statement", "")
	c.SetParamNames("id")
	c.SetParamValues("404")
	require.NoError(t, h.ClientStatement(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVendorStatement(t *testing.T) {
	h := NewVendorHandler(newVendorFixtureStore())
	e := echo.New()

	c, rec := jsonReq(e, http.MethodGet, "/vendors/1/statement", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.VendorStatement(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "بيانات المورد")
	assert.Contains(t, rec.Body.String(), "المستحقات")
}
