package database

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
	"github.com/trezcool/tutordesk/services/lessonapi"
	"github.com/trezcool/tutordesk/storage/database/inmem"
)

const httpTimeout = 30 * time.Second

// OpenGateway returns the lesson.Gateway selected by conf.Gateway.Kind:
// the in-memory store (seeded from conf.Gateway.SeedFile) or a remote API.
func OpenGateway(conf *core.Config) (lesson.Gateway, error) {
	switch conf.Gateway.Kind {
	case core.GatewayMemory, "":
		db, err := inmemdb.Open(conf)
		if err != nil {
			return nil, errors.Wrap(err, "opening in-memory database")
		}
		return inmemdb.NewLessonGateway(db, conf), nil

	case core.GatewayHTTP:
		if conf.Gateway.BaseURL == "" {
			return nil, errors.New("http gateway requires a base URL")
		}
		client := lessonapi.NewClient(conf.Gateway.BaseURL, conf.Gateway.Token, &http.Client{Timeout: httpTimeout})
		return client, nil
	}
	return nil, errors.Errorf("unknown gateway kind %q", conf.Gateway.Kind)
}
