package orchestrators

import (
	"context"
	"errors"
	"testing"

	"datao/internal/domain/client"
)

type mockClientStore struct {
	clients []client.Client
	err     error
}

func (m *mockClientStore) List(_ context.Context) ([]client.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.clients, nil
}

func demoClients(t *testing.T) []client.Client {
	t.Helper()
	padel := client.Client{ID: "client-padel", Name: "Padel Pro Premium", Dashboard: client.DashboardPadel}
	if err := padel.SetAccessCode("PADEL2026"); err != nil {
		t.Fatalf("SetAccessCode() error = %v", err)
	}
	eco := client.Client{ID: "client-eco", Name: "Ecotienda Verde", Dashboard: client.DashboardSales}
	if err := eco.SetAccessCode("ECO2026"); err != nil {
		t.Fatalf("SetAccessCode() error = %v", err)
	}
	return []client.Client{padel, eco}
}

func TestExecuteLogin(t *testing.T) {
	deps := LoginDeps{ClientStore: &mockClientStore{clients: demoClients(t)}}

	tests := []struct {
		name    string
		code    string
		want    LoginResult
		wantErr error
	}{
		{
			name: "padel code",
			code: "PADEL2026",
			want: LoginResult{ClientID: "client-padel", ClientName: "Padel Pro Premium", Dashboard: client.DashboardPadel},
		},
		{
			name: "sales code lowercase",
			code: "eco2026",
			want: LoginResult{ClientID: "client-eco", ClientName: "Ecotienda Verde", Dashboard: client.DashboardSales},
		},
		{
			name: "padded code",
			code: "  padel2026 ",
			want: LoginResult{ClientID: "client-padel", ClientName: "Padel Pro Premium", Dashboard: client.DashboardPadel},
		},
		{name: "unknown code", code: "NOPE2026", wantErr: ErrInvalidAccessCode},
		{name: "empty code", code: "", wantErr: ErrInvalidAccessCode},
		{name: "blank code", code: "   ", wantErr: ErrInvalidAccessCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExecuteLogin(context.Background(), LoginInput{AccessCode: tt.code}, deps)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExecuteLogin() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExecuteLogin() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExecuteLogin_StoreError(t *testing.T) {
	storeErr := errors.New("directory unavailable")
	deps := LoginDeps{ClientStore: &mockClientStore{err: storeErr}}

	_, err := ExecuteLogin(context.Background(), LoginInput{AccessCode: "PADEL2026"}, deps)
	if !errors.Is(err, storeErr) {
		t.Errorf("ExecuteLogin() error = %v, want wrapped %v", err, storeErr)
	}
}
