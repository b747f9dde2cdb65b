package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Spring":                    "spring",
		"Tiếng Việt":                "tieng-viet",
		"Đại học Bách khoa":         "dai-hoc-bach-khoa",
		"  Lễ   tốt nghiệp 2024!  ": "le-tot-nghiep-2024",
		"snake_case--title":         "snake-case-title",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "tiengviet", Normalize("Tiếng Việt"))
	assert.Equal(t, "%springfes%", Pattern("Spring fes"))
	assert.Equal(t, "%%", Pattern(""))
}
