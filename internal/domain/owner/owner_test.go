package owner

import "testing"

func TestCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      CreateRequest
		wantCode string
	}{
		{name: "valid", req: CreateRequest{Name: "Ana", Address: "Calle 2", Birthday: "1990-05-01"}},
		{name: "blank name", req: CreateRequest{Name: " ", Address: "Calle 2", Birthday: "1990-05-01"}, wantCode: CodeNameRequired},
		{name: "blank address", req: CreateRequest{Name: "Ana", Address: "\t", Birthday: "1990-05-01"}, wantCode: CodeAddressRequired},
		{name: "missing birthday", req: CreateRequest{Name: "Ana", Address: "Calle 2"}, wantCode: CodeBirthdayRequired},
		{name: "all missing reports name", req: CreateRequest{}, wantCode: CodeNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Code != tt.wantCode {
				t.Fatalf("Validate() = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestUpdateRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&UpdateRequest{}).Validate(); err == nil || err.Code != CodeIDRequired {
		t.Errorf("Validate() = %v, want %s", err, CodeIDRequired)
	}

	blank := ""
	if err := (&UpdateRequest{ID: "3", Name: &blank}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for partial update", err)
	}
}
