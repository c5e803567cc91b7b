package request

import (
	"encoding/json"

	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/usecase/commands"

	"github.com/google/uuid"
)

// DocumentPayload carries one uploaded file. Data is base64 on the wire and
// decoded by encoding/json into raw bytes.
type DocumentPayload struct {
	FieldKey    string `json:"field_key" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Data        []byte `json:"data" binding:"required"`
}

func toDocuments(payloads []DocumentPayload) []modification.Document {
	if len(payloads) == 0 {
		return nil
	}
	docs := make([]modification.Document, len(payloads))
	for i, p := range payloads {
		docs[i] = modification.Document{
			FieldKey:    p.FieldKey,
			Filename:    p.Filename,
			ContentType: p.ContentType,
			Data:        p.Data,
		}
	}
	return docs
}

type ProposeUpdateRequest struct {
	TargetKind string            `json:"target_kind" binding:"required"`
	TargetID   uuid.UUID         `json:"target_id" binding:"required"`
	Values     json.RawMessage   `json:"values" binding:"required"`
	Documents  []DocumentPayload `json:"documents,omitempty"`
}

func (r *ProposeUpdateRequest) ToCommand() (commands.ProposeUpdateRequest, error) {
	values, err := modification.DecodeValues(r.Values)
	if err != nil {
		return commands.ProposeUpdateRequest{}, err
	}
	return commands.ProposeUpdateRequest{
		TargetKind: r.TargetKind,
		TargetID:   r.TargetID,
		NewValues:  values,
		Documents:  toDocuments(r.Documents),
	}, nil
}

type ProposeCreationRequest struct {
	TargetKind string            `json:"target_kind" binding:"required"`
	Values     json.RawMessage   `json:"values" binding:"required"`
	Documents  []DocumentPayload `json:"documents,omitempty"`
}

func (r *ProposeCreationRequest) ToCommand() (commands.ProposeCreationRequest, error) {
	values, err := modification.DecodeValues(r.Values)
	if err != nil {
		return commands.ProposeCreationRequest{}, err
	}
	return commands.ProposeCreationRequest{
		TargetKind: r.TargetKind,
		NewValues:  values,
		Documents:  toDocuments(r.Documents),
	}, nil
}

type ProcessProposalRequest struct {
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=2000"`
}

func (r *ProcessProposalRequest) ToCommand() commands.ProcessProposalRequest {
	return commands.ProcessProposalRequest{Comment: r.Comment}
}
