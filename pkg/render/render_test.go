package render

import "testing"

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites offset viewBox",
			in:   `<svg width="8pt" height="6pt" viewBox="0.00 0.50 100.00 50.00">`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`,
		},
		{
			name: "no viewBox untouched",
			in:   `<svg width="8pt">`,
			want: `<svg width="8pt">`,
		},
		{
			name: "zero size untouched",
			in:   `<svg viewBox="0 0 0 50">`,
			want: `<svg viewBox="0 0 0 50">`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}
