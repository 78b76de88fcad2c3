package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/auther/token"
)

type record struct {
	Token   *string `json:"token"`
	Expires *int64  `json:"expires"`
}

func encode(tokens []*token.Token) ([]byte, error) {
	records := make([]record, 0, len(tokens))
	for _, t := range tokens {
		identifier := t.Identifier()
		expires := t.ExpiresAt().UnixMilli()
		records = append(records, record{Token: &identifier, Expires: &expires})
	}
	return json.Marshal(records)
}

func decode(data []byte) ([]*token.Token, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("expected a JSON array")
	}
	tokens := make([]*token.Token, 0, len(records))
	for i, r := range records {
		if r.Token == nil || r.Expires == nil {
			return nil, fmt.Errorf("record %d: missing token or expires", i)
		}
		tokens = append(tokens, token.Reconstruct(*r.Token, time.UnixMilli(*r.Expires)))
	}
	return tokens, nil
}
