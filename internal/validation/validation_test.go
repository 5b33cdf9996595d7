package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestValidateStructAndErrorsToJson(t *testing.T) {
	type Input struct {
		Email string `validate:"required,email"  json:"email"`
		Tags  []int  `validate:"min=1,dive,gt=0" json:"tags"`
	}

	tests := []struct {
		name        string
		in          Input
		wantErr     bool
		wantJsonMap map[string]string
	}{
		{
			name:    "success",
			in:      Input{Email: "a@b.com", Tags: []int{1, 2, 3}},
			wantErr: false,
		},
		{
			name:    "missing email",
			in:      Input{Email: "", Tags: []int{1}},
			wantErr: true,
			wantJsonMap: map[string]string{
				"email": "required",
			},
		},
		{
			name:    "invalid email and empty tags",
			in:      Input{Email: "not-an-email", Tags: []int{}},
			wantErr: true,
			wantJsonMap: map[string]string{
				"email": "email",
				"tags":  "min",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			// convert and unmarshal for comparison
			js, jerr := ErrorsToJson(err)
			if jerr != nil {
				t.Fatalf("ErrorsToJson() error = %v", jerr)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			for field, tag := range tt.wantJsonMap {
				if got[field] != tag {
					t.Errorf("field %q: got %q, want %q", field, got[field], tag)
				}
			}
		})
	}
}

func TestMediaMimeValidation(t *testing.T) {
	type Input struct {
		Type string `validate:"required,mediamime" json:"type"`
	}

	tests := []struct {
		name    string
		in      Input
		wantErr bool
		wantTag string
	}{
		{name: "jpeg", in: Input{Type: "image/jpeg"}},
		{name: "heic upper case", in: Input{Type: "IMAGE/HEIC"}},
		{name: "quicktime", in: Input{Type: "video/quicktime"}},
		{name: "pdf", in: Input{Type: "application/pdf"}, wantErr: true, wantTag: "mediamime"},
		{name: "prefix only", in: Input{Type: "image/"}, wantErr: true, wantTag: "mediamime"},
		{name: "empty", in: Input{Type: ""}, wantErr: true, wantTag: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			js, _ := ErrorsToJson(err)
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("json.Unmarshal err = %v", err)
			}
			if got["type"] != tt.wantTag {
				t.Errorf("field %q: got %q, want %q", "type", got["type"], tt.wantTag)
			}
		})
	}
}

func TestByteSliceMin(t *testing.T) {
	type Input struct {
		Data []byte `validate:"required,min=1" json:"data"`
	}
	if err := ValidateStruct(Input{Data: []byte{}}); err == nil {
		t.Fatal("expected error for empty data, got nil")
	}
	if err := ValidateStruct(Input{Data: []byte("x")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNestedAndJsonTagFallback(t *testing.T) {
	type Inner struct {
		Foo string `validate:"required" json:"foo"`
	}
	type Outer struct {
		In  *Inner `validate:"required" json:"inner"`
		Bar int    `validate:"required"             `
	}

	// Case 1: nil pointer → error on "inner"
	t.Run("nil nested struct", func(t *testing.T) {
		o := Outer{In: nil, Bar: 0}

		err := ValidateStruct(o)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		js, _ := ErrorsToJson(err)

		var got map[string]string
		if err := json.Unmarshal([]byte(js), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}

		if got["inner"] != "required" {
			t.Errorf("inner: got %q, want %q", got["inner"], "required")
		}
		if got["Bar"] != "required" {
			t.Errorf("Bar: got %q, want %q", got["Bar"], "required")
		}
	})

	// Case 2: pointer present but Foo empty → error on "foo"
	t.Run("missing nested field", func(t *testing.T) {
		o := Outer{In: &Inner{Foo: ""}, Bar: 0}

		err := ValidateStruct(o)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		js, _ := ErrorsToJson(err)

		var got map[string]string
		if err := json.Unmarshal([]byte(js), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}

		// Now the only failure on the nested struct is Foo → json:"foo"
		if got["foo"] != "required" {
			t.Errorf("foo: got %q, want %q", got["foo"], "required")
		}
		if got["Bar"] != "required" {
			t.Errorf("Bar: got %q, want %q", got["Bar"], "required")
		}
	})
}

func TestErrorsToJson_Wrapped(t *testing.T) {
	type Input struct {
		ID string `validate:"required" json:"id"`
	}
	sentinel := errors.New("invalid input")

	tests := []struct {
		name string
		err  error
		want map[string]string
	}{
		{"wrapped field errors", fmt.Errorf("%w: %w", sentinel, ValidateStruct(Input{})), map[string]string{"id": "required"}},
		{"plain error", fmt.Errorf("%w: too big", sentinel), map[string]string{"_": "invalid input: too big"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			js, err := ErrorsToJson(tt.err)
			if err != nil {
				t.Fatalf("ErrorsToJson() error = %v", err)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%q: got %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
