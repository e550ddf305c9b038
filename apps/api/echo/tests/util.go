package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	. "github.com/trezcool/tutordesk/apps/api/echo"
	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
	"github.com/trezcool/tutordesk/core/user"
	"github.com/trezcool/tutordesk/services/email"
	"github.com/trezcool/tutordesk/services/logger"
	"github.com/trezcool/tutordesk/tests"
)

const tutorName = "Sarah Tan"

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testEnv struct {
	conf     *core.Config
	server   *Server
	gateway  *testutil.FakeGateway
	sessions *lesson.Sessions
	mailSvc  interface {
		core.EmailService
		SentMessages() []core.EmailMessage
	}
}

func newTestConfig() *core.Config {
	return &core.Config{
		Env:       "TEST",
		TestMode:  true,
		AppName:   "Tutordesk",
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			Host:               "localhost",
			JWTExpirationDelta: time.Hour,
			DisableReqLogs:     true,
		},
		Tutor:     core.TutorConfig{ID: "1", Name: tutorName},
	}
}

func setup(t *testing.T, lessons ...lesson.Lesson) *testEnv {
	conf := newTestConfig()
	std := log.New(io.Discard, "", 0)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	lesson.InitValidators(validate, translator)

	gw := testutil.NewFakeGateway(lessons...)
	sessions := lesson.NewSessions(gw)
	mailSvc := emailsvc.NewConsoleService(nil, conf)

	server := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logsvc.NewRollbarLogger(std, conf),
		UserSvc:    user.NewService(conf, validate),
		Gateway:    gw,
		Sessions:   sessions,
		MailSvc:    mailSvc,
		Validate:   validate,
		Translator: translator,
	})
	t.Cleanup(func() { _ = server.Close() })

	return &testEnv{conf: conf, server: server, gateway: gw, sessions: sessions, mailSvc: mailSvc}
}

// token returns a token for a new session of the configured tutor.
func (env *testEnv) token(t *testing.T, email ...string) string {
	usr := user.User{ID: env.conf.Tutor.ID, Name: env.conf.Tutor.Name}
	if len(email) > 0 {
		usr.Email = email[0]
	}
	token, err := GenerateToken(GetUserClaims(usr, env.conf), env.conf.SecretKey)
	if err != nil {
		t.Fatalf("token() failed: %v", err)
	}
	return token
}

func (env *testEnv) do(method, path, token string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(method, path, token, data...)
	env.server.ServeHTTP(rec, req)
	return rec
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarchall(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("unmarchall() failed: %v; body %s", err, rec.Body.String())
	}
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, env *testEnv, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			rec := env.do(method, tt.path, tt.token, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func fixtureLessons() []lesson.Lesson {
	return []lesson.Lesson{
		testutil.NewLesson("1", testutil.Date(2024, time.March, 1, 10, 0), lesson.StatusAvailable),
		testutil.NewLesson("2", testutil.Date(2024, time.March, 15, 9, 0), lesson.StatusCompleted, "Ann"),
		testutil.NewLesson("3", testutil.Date(2024, time.March, 20, 16, 0), lesson.StatusConfirmed, "Bob"),
		testutil.NewLesson("4", testutil.Date(2024, time.April, 2, 10, 0), lesson.StatusConfirmed),
		testutil.NewLesson("5", testutil.Date(2024, time.March, 25, 14, 0), lesson.StatusAvailable, "Ann", "Bob"),
		testutil.NewLesson("6", testutil.Date(2024, time.March, 10, 10, 0), lesson.StatusConfirmed),
	}
}

// fixtureNow makes lesson 3 today's lesson.
func fixtureNow(t *testing.T) time.Time {
	now := testutil.Date(2024, time.March, 20, 12, 0)
	testutil.FixedNow(t, now)
	return now
}

type wireLesson struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Status string  `json:"status"`
	Tutor  *string `json:"tutor"`
}

func lessonIDs(lessons []wireLesson) []string {
	res := make([]string, 0, len(lessons))
	for _, l := range lessons {
		res = append(res, l.ID)
	}
	return res
}
