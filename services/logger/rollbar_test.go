package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/user"
)

func TestRollbarLogger(t *testing.T) {
	out := new(bytes.Buffer)
	logger := NewRollbarLogger(log.New(out, "API : ", 0), &core.Config{Debug: true})

	logger.Error("taking lesson", errors.New("boom"), user.User{ID: "1", Name: "Sarah Tan"})
	logger.Info("refreshed", map[string]interface{}{"sessions": 2})

	assert.Equal(t,
		"API : ERROR: taking lesson\nAPI : boom\nAPI : tutor: Sarah Tan (1)\n"+
			"API : INFO: refreshed\nAPI : map[sessions:2]\n",
		out.String(),
	)
}
