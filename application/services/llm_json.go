package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var fencedBlockRegexp = regexp.MustCompile("(?s)```(?:[a-zA-Z]+)?\\s*(.*?)```")

// DecodeModelJSON parses JSON out of a model reply into v. Two strategies
// in order: the raw reply when it already starts with '{' or '[', else the
// first fenced code block. Syntactically broken JSON gets one repair
// attempt before the call fails.
func DecodeModelJSON(raw string, v interface{}) error {
	trimmed := strings.TrimSpace(raw)

	candidate := trimmed
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		match := fencedBlockRegexp.FindStringSubmatch(trimmed)
		if match == nil {
			return fmt.Errorf("model reply contains no JSON")
		}
		candidate = strings.TrimSpace(match[1])
	}

	err := json.Unmarshal([]byte(candidate), v)
	if err == nil {
		return nil
	}

	if _, ok := err.(*json.SyntaxError); ok {
		repaired, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return fmt.Errorf("failed to repair model JSON: %w", repairErr)
		}
		return json.Unmarshal([]byte(repaired), v)
	}

	return err
}
