package gateway

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Outcome classifies a gateway signal. Reconciliation only ever branches
// on this value, never on raw vendor fields.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Result is the normalized form of a webhook callback or status query.
// Receipt, Amount, Phone and TxnTime are populated only on success.
type Result struct {
	Outcome           Outcome
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Receipt           string
	Amount            float64
	Phone             string
	TxnTime           time.Time
}

// Query result codes that mean "outcome not yet known": the push prompt
// is still open on the handset or the gateway timed out internally. The
// poll path treats these as no new information and defers to the webhook.
var ambiguousQueryCodes = map[string]bool{
	"1032":         true, // awaiting user PIN entry
	"1037":         true, // request timed out at the gateway, outcome unknown
	"500.001.1001": true, // transaction still being processed
}

// ClassifyQuery maps a status-query response onto an Outcome. Only a
// definitive success is ever actionable from this channel; everything
// else, including unknown codes, stays pending because the webhook is the
// only channel permitted to declare final failure.
func ClassifyQuery(resp QueryResponse) Outcome {
	if resp.ResultCode == "0" {
		return OutcomeSuccess
	}
	return OutcomePending
}

// IsAmbiguousQueryCode reports whether the code is a known transient one,
// used only for log wording.
func IsAmbiguousQueryCode(code string) bool {
	return ambiguousQueryCodes[code]
}

type callbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []metadataItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type metadataItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value"`
}

// ParseCallback decodes a webhook payload into a Result. Metadata values
// arrive loosely typed (numbers or strings depending on the field and the
// vendor's mood), so every field is read defensively; a missing or
// malformed metadata item degrades that field, it never fails the parse.
func ParseCallback(payload []byte) (Result, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Result{}, fmt.Errorf("unparseable callback payload: %w", err)
	}

	cb := env.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return Result{}, fmt.Errorf("callback payload has no correlation key")
	}

	res := Result{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
	}

	if cb.ResultCode != 0 {
		res.Outcome = OutcomeFailed
		return res, nil
	}

	res.Outcome = OutcomeSuccess
	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "MpesaReceiptNumber":
			res.Receipt = asString(item.Value)
		case "Amount":
			res.Amount = asFloat(item.Value)
		case "PhoneNumber":
			res.Phone = asString(item.Value)
		case "TransactionDate":
			res.TxnTime = parseTxnTime(item.Value)
		}
	}

	return res, nil
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func asFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	case json.Number:
		f, _ := t.Float64()
		return f
	default:
		return 0
	}
}

// parseTxnTime handles the vendor's YYYYMMDDHHMMSS encoding, delivered as
// either a number or a string. An unparseable value yields the zero time.
func parseTxnTime(v interface{}) time.Time {
	s := asString(v)
	if len(s) != len(timestampLayout) {
		return time.Time{}
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
