package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active", "created_at", "updated_at"}).
			AddRow(1, "交通", true, time.Now(), time.Now()).
			AddRow(2, "餐饮", true, time.Now(), time.Now()))

	router := gin.New()
	router.GET("/categories", NewCategoryHandler().List)

	req := httptest.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("餐饮").
		WillReturnRows(categoryRows(1, "餐饮", true))

	router := gin.New()
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"name":"餐饮"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "类别名称已存在", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_ReactivatesInactive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("宠物").
		WillReturnRows(categoryRows(3, "宠物", false))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"name":"宠物"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "类别已重新启用", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete_SoftWhenReferenced(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(2, "购物", true))

	// 有消费记录引用，只停用
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `expenses`").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/categories/:id", NewCategoryHandler().Delete)

	req := httptest.NewRequest("DELETE", "/categories/2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "soft_deleted", data["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete_HardWhenUnreferenced(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(5, "闲置", true))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `expenses`").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/categories/:id", NewCategoryHandler().Delete)

	req := httptest.NewRequest("DELETE", "/categories/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hard_deleted", data["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.DELETE("/categories/:id", NewCategoryHandler().Delete)

	req := httptest.NewRequest("DELETE", "/categories/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
