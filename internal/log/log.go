// Package log writes one JSON object per line through the standard logger.
package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	levelInfo  = "info"
	levelAudit = "audit"
	levelWarn  = "warn"
	levelError = "error"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Action string         `json:"action,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// write fills request details when c is non-nil; startup and background
// events pass nil.
func write(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.IP = c.IP()
		e.Method = c.Method()
		e.Path = c.Path()
		e.Status = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e.ReqID = rid
		}
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, mErr := json.Marshal(e)
	if mErr != nil {
		e.Fields = map[string]any{"marshal_err": mErr.Error()}
		b, _ = json.Marshal(e)
	}
	log.Println(string(b))
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write(levelInfo, c, action, nil, fields) }

// Audit records a persisted write.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(levelAudit, c, action, nil, fields)
}

// Warn records rejected client input.
func Warn(c *fiber.Ctx, action string, fields map[string]any) {
	write(levelWarn, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(levelError, c, action, err, fields)
}
