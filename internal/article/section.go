package article

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Section is one content unit of the article, identified by a string id.
// Only the enrichment fields are interpreted; every other key round-trips
// byte for byte through Extra.
type Section struct {
	ID            string
	Type          string
	ChapterNumber int
	PartNumber    int
	Metadata      *SectionMetadata
	KeyTakeaways  []string
	References    []Reference
	Exercises     []Exercise

	Extra map[string]json.RawMessage
}

// SectionMetadata is the nested per-section metadata object. Keys the tool
// does not set are preserved in Extra.
type SectionMetadata struct {
	EstimatedReadingTime int
	Tags                 []string

	Extra map[string]json.RawMessage
}

type Reference struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type Exercise struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
}

func (s *Section) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Section{}
	for key, val := range raw {
		var err error
		switch key {
		case "id":
			err = json.Unmarshal(val, &s.ID)
		case "type":
			err = json.Unmarshal(val, &s.Type)
		case "chapterNumber":
			err = json.Unmarshal(val, &s.ChapterNumber)
		case "partNumber":
			err = json.Unmarshal(val, &s.PartNumber)
		case "metadata":
			s.Metadata = &SectionMetadata{}
			err = json.Unmarshal(val, s.Metadata)
		case "keyTakeaways":
			err = json.Unmarshal(val, &s.KeyTakeaways)
		case "references":
			err = json.Unmarshal(val, &s.References)
		case "exercises":
			err = json.Unmarshal(val, &s.Exercises)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]json.RawMessage)
			}
			s.Extra[key] = val
		}
		if err != nil {
			return fmt.Errorf("section field %q: %w", key, err)
		}
	}
	return nil
}

func (s Section) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.Extra)+8)
	for k, v := range s.Extra {
		out[k] = v
	}

	if err := putField(out, "id", s.ID); err != nil {
		return nil, err
	}
	if s.Type != "" {
		if err := putField(out, "type", s.Type); err != nil {
			return nil, err
		}
	}
	if s.ChapterNumber > 0 {
		if err := putField(out, "chapterNumber", s.ChapterNumber); err != nil {
			return nil, err
		}
	}
	if s.PartNumber > 0 {
		if err := putField(out, "partNumber", s.PartNumber); err != nil {
			return nil, err
		}
	}
	if s.Metadata != nil {
		if err := putField(out, "metadata", s.Metadata); err != nil {
			return nil, err
		}
	}
	if len(s.KeyTakeaways) > 0 {
		if err := putField(out, "keyTakeaways", s.KeyTakeaways); err != nil {
			return nil, err
		}
	}
	if len(s.References) > 0 {
		if err := putField(out, "references", s.References); err != nil {
			return nil, err
		}
	}
	if len(s.Exercises) > 0 {
		if err := putField(out, "exercises", s.Exercises); err != nil {
			return nil, err
		}
	}
	return marshalNoEscape(out)
}

func (m *SectionMetadata) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = SectionMetadata{}
	for key, val := range raw {
		var err error
		switch key {
		case "estimatedReadingTime":
			err = json.Unmarshal(val, &m.EstimatedReadingTime)
		case "tags":
			err = json.Unmarshal(val, &m.Tags)
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]json.RawMessage)
			}
			m.Extra[key] = val
		}
		if err != nil {
			return fmt.Errorf("section metadata field %q: %w", key, err)
		}
	}
	return nil
}

func (m SectionMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.Extra)+2)
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.EstimatedReadingTime > 0 {
		if err := putField(out, "estimatedReadingTime", m.EstimatedReadingTime); err != nil {
			return nil, err
		}
	}
	if m.Tags != nil {
		if err := putField(out, "tags", m.Tags); err != nil {
			return nil, err
		}
	}
	return marshalNoEscape(out)
}

// Clone returns a deep copy; enrichment writes to the copy so the input
// document is never mutated.
func (s Section) Clone() Section {
	out := s
	if s.Metadata != nil {
		meta := s.Metadata.Clone()
		out.Metadata = &meta
	}
	out.KeyTakeaways = append([]string(nil), s.KeyTakeaways...)
	out.References = append([]Reference(nil), s.References...)
	out.Exercises = append([]Exercise(nil), s.Exercises...)
	if s.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func (m SectionMetadata) Clone() SectionMetadata {
	out := m
	out.Tags = append([]string(nil), m.Tags...)
	if m.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func putField(out map[string]json.RawMessage, key string, v any) error {
	b, err := marshalNoEscape(v)
	if err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	out[key] = b
	return nil
}

// marshalNoEscape marshals without HTML escaping so <, > and & survive the
// way the enhanced file preserves them.
func marshalNoEscape(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
