package parser

import (
	"encoding/json"
	"os"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

func ParseJSON(path string) (*domain.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSONBytes(b)
}

func ParseJSONBytes(b []byte) (*domain.Document, error) {
	var d domain.Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func ParseJSONString(s string) (*domain.Document, error) {
	return ParseJSONBytes([]byte(s))
}
