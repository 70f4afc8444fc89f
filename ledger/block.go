package ledger

import "github.com/google/uuid"

// Block is one entry of the transcript.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Record    Record `json:"record"`
}

// Record is the disclosure of a finalized session.
type Record struct {
	SessionID  uuid.UUID `json:"session_id"`
	Purpose    string    `json:"purpose"`
	Label      string    `json:"label"`
	Range      int       `json:"range"`
	Commitment string    `json:"commitment"`
	Key        string    `json:"key"`
	Value      int       `json:"value"`
	Input      int       `json:"input"`
	Result     int       `json:"result"`
}
