package scan

import "testing"

func TestIsValidConstantName(t *testing.T) {
	valid := []string{"TAX_RATE", "A", "API_KEY_V2", "X1", "MAX_RETRIES"}
	for _, name := range valid {
		if !IsValidConstantName(name) {
			t.Errorf("expected %q to be a valid constant name", name)
		}
	}

	invalid := []string{"tax_rate", "_TAX", "TAX_", "Tax-Rate", "", "123", "TAX__RATE", "TAX RATE", "1ST"}
	for _, name := range invalid {
		if IsValidConstantName(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
