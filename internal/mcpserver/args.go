package mcpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vikkysarswat/dhan-mcp-server/internal/dhan"
	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// Argument binding helpers. MCP arguments arrive as a decoded JSON object,
// so numbers are float64 and everything needs shape checks before use.

func missing(field string) error {
	return &models.ValidationError{Field: field, Message: field + " is required"}
}

func wrongType(field, want string) error {
	return &models.ValidationError{Field: field, Message: fmt.Sprintf("%s must be a %s", field, want)}
}

func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", missing(key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", wrongType(key, "non-empty string")
	}
	return s, nil
}

func optString(args map[string]any, key, fallback string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, "string")
	}
	if s == "" {
		return fallback, nil
	}
	return s, nil
}

func requireInt(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, missing(key)
	}
	return coerceInt(key, v)
}

func optInt(args map[string]any, key string, fallback int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	return coerceInt(key, v)
}

func coerceInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, wrongType(key, "whole number")
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, wrongType(key, "whole number")
		}
		return int(i), nil
	default:
		return 0, wrongType(key, "number")
	}
}

func optFloat(args map[string]any, key string, fallback float64) (float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, wrongType(key, "number")
		}
		return f, nil
	default:
		return 0, wrongType(key, "number")
	}
}

func requireFloat(args map[string]any, key string) (float64, error) {
	if _, ok := args[key]; !ok {
		return 0, missing(key)
	}
	return optFloat(args, key, 0)
}

func optBool(args map[string]any, key string, fallback bool) (bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(key, "boolean")
	}
	return b, nil
}

// parseInstrumentsArg decodes the segment-to-ids object market data tools
// take, accepting ids as numbers or numeric strings.
func parseInstrumentsArg(args map[string]any) (map[models.ExchangeSegment][]int, error) {
	raw, ok := args["instruments"]
	if !ok || raw == nil {
		return nil, missing("instruments")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, wrongType("instruments", "object mapping exchange segment to security id lists")
	}

	out := make(map[models.ExchangeSegment][]int, len(obj))
	for segment, v := range obj {
		list, ok := v.([]any)
		if !ok {
			return nil, wrongType("instruments."+segment, "array of security ids")
		}
		ids := make([]int, 0, len(list))
		for _, item := range list {
			switch id := item.(type) {
			case float64:
				ids = append(ids, int(id))
			case string:
				n, err := strconv.Atoi(id)
				if err != nil {
					return nil, &models.ValidationError{
						Field:   "instruments." + segment,
						Message: fmt.Sprintf("security id %q is not numeric", id),
					}
				}
				ids = append(ids, n)
			default:
				return nil, wrongType("instruments."+segment, "array of numeric security ids")
			}
		}
		out[models.ExchangeSegment(segment)] = ids
	}
	return out, nil
}

// parseNumericID converts a stored security id to the integer form the
// market feed endpoints expect.
func parseNumericID(securityID string) (int, error) {
	n, err := strconv.Atoi(securityID)
	if err != nil {
		return 0, &models.ValidationError{
			Field:   "securityId",
			Message: fmt.Sprintf("security id %q is not numeric", securityID),
		}
	}
	return n, nil
}

// jsonResult marshals a payload as an indented JSON tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// toolError converts any failure into a structured tool error result.
// Errors never propagate past the protocol boundary as faults.
func (s *Server) toolError(tool string, err error) (*mcp.CallToolResult, error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		s.log.Warn().Str("tool", tool).Str("field", vErr.Field).Msg(vErr.Message)
		return mcp.NewToolResultError(vErr.Error()), nil
	}
	var apiErr *dhan.APIError
	if errors.As(err, &apiErr) {
		s.log.Error().Str("tool", tool).Str("kind", string(apiErr.Kind)).Int("status", apiErr.StatusCode).Msg(apiErr.Message)
	} else {
		s.log.Error().Str("tool", tool).Err(err).Msg("tool failed")
	}
	return mcp.NewToolResultError(err.Error()), nil
}

// Enum helpers for tool schema declarations.

func segmentValues() []string {
	out := make([]string, len(models.ExchangeSegments))
	for i, s := range models.ExchangeSegments {
		out[i] = string(s)
	}
	return out
}

func productValues() []string {
	out := make([]string, len(models.ProductTypes))
	for i, p := range models.ProductTypes {
		out[i] = string(p)
	}
	return out
}

func orderTypeValues() []string {
	out := make([]string, len(models.OrderTypes))
	for i, o := range models.OrderTypes {
		out[i] = string(o)
	}
	return out
}

func intervalValues() []string {
	out := make([]string, len(models.Intervals))
	for i, iv := range models.Intervals {
		out[i] = string(iv)
	}
	return out
}
