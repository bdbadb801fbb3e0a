package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatPriceYuan 分转元的显示格式
func TestFormatPriceYuan(t *testing.T) {
	tests := []struct {
		fen  int64
		want string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{5900, "59.00"},
		{5901, "59.01"},
		{12850, "128.50"},
		{100000000, "1000000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPriceYuan(tt.fen))
	}
}
