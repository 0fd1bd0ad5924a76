package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ethiopulse/backend/apps/api/echo"
	"github.com/ethiopulse/backend/core"
	"github.com/ethiopulse/backend/core/catalog"
	"github.com/ethiopulse/backend/core/chat"
	"github.com/ethiopulse/backend/core/user"
	dummysvc "github.com/ethiopulse/backend/services/assistant/dummy"
	emailsvc "github.com/ethiopulse/backend/services/email"
	logsvc "github.com/ethiopulse/backend/services/logger"
	inmemdb "github.com/ethiopulse/backend/storage/database/inmem"
)

var (
	conf *core.Config

	usrRepo user.Repository
	catRepo catalog.Repository
	aiSvc   *dummysvc.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

// setup builds a fresh app against an empty DB; pass seeded=true to load the
// stock platform content instead.
func setup(t *testing.T, seeded ...bool) Server {
	var db *inmemdb.DB
	if len(seeded) > 0 && seeded[0] {
		var err error
		if db, err = inmemdb.Open(); err != nil {
			t.Fatalf("inmemdb.Open(): %v", err)
		}
	} else {
		db = inmemdb.OpenEmpty()
	}
	usrRepo = inmemdb.NewUserRepository(db)
	catRepo = inmemdb.NewCatalogRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	usrSvc := user.NewServiceMock(conf, usrRepo, mailSvc)
	catSvc := catalog.NewService(catRepo)
	aiSvc = dummysvc.NewService("")
	logger := logsvc.NewNopLogger()

	// set up server
	return NewServer(
		"",  /* addr */
		nil, /* shutdown */
		&Deps{
			Conf:         conf,
			Logger:       logger,
			UserSvc:      usrSvc,
			CatalogSvc:   catSvc,
			AssistantSvc: aiSvc,
			Relay:        chat.NewRelay(logger),
		},
	)
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
	extra    interface{}
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

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(conf, usr)
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
