package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xeipuuv/gojsonschema"
)

// transactionSchema is the well-formedness contract for extraction
// responses: a single transaction object or an array of them.
const transactionSchema = `{
	"oneOf": [
		{"$ref": "#/definitions/transaction"},
		{"type": "array", "items": {"$ref": "#/definitions/transaction"}}
	],
	"definitions": {
		"transaction": {
			"type": "object",
			"required": ["type", "amount"],
			"properties": {
				"type": {"type": "string", "enum": ["income", "expense"]},
				"amount": {"type": "number", "minimum": 0},
				"category": {"type": "string"},
				"description": {"type": "string"}
			}
		}
	}
}`

var transactionSchemaLoader = gojsonschema.NewStringLoader(transactionSchema)

var (
	amountPattern   = regexp.MustCompile(`"amount":\s*(\d+)`)
	typePattern     = regexp.MustCompile(`"type":\s*"(\w+)"`)
	categoryPattern = regexp.MustCompile(`"category":\s*"([^"]+)"`)
)

type rawTransaction struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// StripCodeFence removes a surrounding markdown code fence, with or without
// a json language tag, returning the inner text.
func StripCodeFence(text string) string {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(text)
}

// ParseTransactions decodes a provider extraction response. A single object
// is normalised into a one-element slice. When strict decoding fails, a
// best-effort pattern recovery of amount/type/category produces at most one
// record with an empty description; multi-transaction arrays cannot be
// reconstructed on that path. ok is false when nothing could be recovered.
func ParseTransactions(text string) (entries []domain.ExtractedTransaction, ok bool) {
	stripped := StripCodeFence(text)

	if raws, valid := decodeStrict(stripped); valid {
		out := make([]domain.ExtractedTransaction, 0, len(raws))
		for _, r := range raws {
			out = append(out, normalize(r))
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	}

	if r, recovered := recoverByPattern(stripped); recovered {
		return []domain.ExtractedTransaction{normalize(r)}, true
	}
	return nil, false
}

func decodeStrict(text string) ([]rawTransaction, bool) {
	result, err := gojsonschema.Validate(transactionSchemaLoader, gojsonschema.NewStringLoader(text))
	if err != nil || !result.Valid() {
		return nil, false
	}

	var list []rawTransaction
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		return list, true
	}
	var single rawTransaction
	if err := json.Unmarshal([]byte(text), &single); err == nil {
		return []rawTransaction{single}, true
	}
	return nil, false
}

// recoverByPattern is the degraded path: field-by-field extraction from a
// response that is not valid JSON. Amount and type are mandatory.
func recoverByPattern(text string) (rawTransaction, bool) {
	amount := amountPattern.FindStringSubmatch(text)
	kind := typePattern.FindStringSubmatch(text)
	if amount == nil || kind == nil {
		return rawTransaction{}, false
	}

	raw := rawTransaction{
		Type:     kind[1],
		Category: domain.CategoryFallback,
	}
	if d, err := decimal.NewFromString(amount[1]); err == nil {
		raw.Amount = d
	} else {
		return rawTransaction{}, false
	}
	if cat := categoryPattern.FindStringSubmatch(text); cat != nil {
		raw.Category = cat[1]
	}
	return raw, true
}

func normalize(r rawTransaction) domain.ExtractedTransaction {
	direction := domain.EntryDirection(r.Type)
	if !direction.IsValid() {
		direction = domain.DirectionExpense
	}
	category := r.Category
	if !domain.IsKnownCategory(direction, category) {
		category = domain.CategoryFallback
	}
	amount := r.Amount
	if amount.IsNegative() {
		amount = amount.Abs()
	}
	return domain.ExtractedTransaction{
		Direction:   direction,
		Amount:      amount,
		Category:    category,
		Description: r.Description,
	}
}
