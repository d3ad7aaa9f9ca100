package assistant

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mayurii-26/drive-smart-portal/src/core/helpers"
	"github.com/mayurii-26/drive-smart-portal/src/core/middleware"
	"github.com/mayurii-26/drive-smart-portal/src/core/models"
	"github.com/mayurii-26/drive-smart-portal/src/core/store"
)

// Lookup maps a free-text query to a service topic. It is a pure
// function of the normalized query: first an ordered containment pass
// over the topic keys, then a keyword-alias pass, then the fallback
// help record. The second return reports whether a topic matched.
func Lookup(query string) (models.ServiceTopic, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, t := range serviceTopics {
		if strings.Contains(q, t.key) || strings.Contains(t.key, q) {
			return t.record, true
		}
	}

	for _, alias := range keywordAliases {
		if strings.Contains(q, alias.keyword) {
			if record, ok := topicByKey(alias.key); ok {
				return record, true
			}
		}
	}

	return fallbackTopic, false
}

func topicByKey(key string) (models.ServiceTopic, bool) {
	for _, t := range serviceTopics {
		if t.key == key {
			return t.record, true
		}
	}
	return models.ServiceTopic{}, false
}

// Query handles POST /api/v1/assistant: logs the query to the audit
// trail and returns the matched (or fallback) topic record.
func Query(c *fiber.Ctx) error {
	body := new(struct {
		Query string `json:"query" validate:"required"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Query text is required", err)
	}

	if identity, ok := middleware.CurrentIdentity(c); ok {
		store.Activities.Record(identity, models.ActionAssistantQuery, map[string]interface{}{
			"query": body.Query,
		})
	}

	record, _ := Lookup(body.Query)
	return helpers.HandleSuccess(c, fiber.StatusOK, "Assistant response", record)
}
