package util

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestEnsureUTF8PassThrough(t *testing.T) {
	assert.Equal(t, "", EnsureUTF8(""))
	assert.Equal(t, "plain ascii output", EnsureUTF8("plain ascii output"))
	assert.Equal(t, "接口状态", EnsureUTF8("接口状态"))
}

func TestEnsureUTF8DecodesGBK(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("设备名称"))
	assert.NoError(t, err)
	assert.False(t, utf8.Valid(gbk))

	decoded := EnsureUTF8Bytes(gbk)
	assert.Equal(t, "设备名称", decoded)
}

func TestEnsureUTF8NeverInvalid(t *testing.T) {
	// 任意字节序列的结果都可安全交给正则处理
	inputs := [][]byte{
		{0xff, 0xfe, 0x00},
		{0x80, 0x81},
		[]byte("mixed \xff bytes"),
	}
	for _, in := range inputs {
		assert.NotEmpty(t, EnsureUTF8Bytes(in))
	}
}
