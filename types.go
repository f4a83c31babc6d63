package main

import "time"

// RespondRequest carries either raw text, which is tokenized, or a
// pre-tokenized word list. Words wins when both are given. Both are compared
// to keywords case- and accent-insensitively; a multi-word keyword can only
// be hit through Words.
type RespondRequest struct {
	Text  string   `json:"text" form:"text" query:"text"`
	Words []string `json:"words" form:"words" query:"words"`
}

type RespondResponse struct {
	Response string `json:"response"`
	Keyword  string `json:"keyword,omitempty"`
	Fallback bool   `json:"fallback"`
}

type ReloadResponse struct {
	Message    string    `json:"message"`
	Keywords   int       `json:"keywords"`
	Defaults   int       `json:"defaults"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

type InfoResponse struct {
	KeywordFile string    `json:"keyword_file"`
	DefaultFile string    `json:"default_file"`
	BlockMode   string    `json:"block_mode"`
	Keywords    []string  `json:"keywords"`
	Defaults    int       `json:"defaults"`
	LoadErrors  []string  `json:"load_errors,omitempty"`
	LoadedAt    time.Time `json:"loaded_at"`
}
