package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendtrack/internal/handlers"
	"spendtrack/internal/logger"
	"spendtrack/internal/middleware"
	"spendtrack/internal/models"
	"spendtrack/internal/services"
	"spendtrack/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Expense{},
		&models.Session{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	sessionTTL := time.Hour

	// Services
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db, sessionTTL)
	expenseService := services.NewExpenseService(db)
	reportService := services.NewReportService(db)
	exportService := services.NewExportService(expenseService)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, sessionService, auditService, sessionTTL, false)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	router.GET("/signup", authHandler.SignupForm)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	protected := router.Group("/")
	protected.Use(middleware.SessionAuth(sessionService, userService, false))

	protected.GET("/dashboard", reportHandler.Dashboard)
	protected.GET("/add_expense", expenseHandler.AddExpenseForm)
	protected.POST("/add_expense", expenseHandler.AddExpense)
	protected.GET("/view_expenses", expenseHandler.ViewExpenses)
	protected.POST("/view_expenses", expenseHandler.FilterExpenses)
	protected.GET("/edit_expense/:id", expenseHandler.EditExpenseForm)
	protected.POST("/edit_expense/:id", expenseHandler.EditExpense)
	protected.GET("/delete_expense/:id", expenseHandler.DeleteExpense)
	protected.GET("/export_csv", exportHandler.ExportCSV)

	return &testApp{DB: db, Router: router}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// get performs a GET request, optionally with a session cookie.
func (app *testApp) get(path string, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// postForm performs a form-encoded POST request, optionally with a session cookie.
func (app *testApp) postForm(path string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// signupAndLogin registers a user and returns the session cookie from login.
func (app *testApp) signupAndLogin(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := app.postForm("/signup", url.Values{"username": {username}, "password": {password}}, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("signup failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.postForm("/login", url.Values{"username": {username}, "password": {password}}, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}
