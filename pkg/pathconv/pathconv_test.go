package pathconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/crosspath/pkg/pathconv"
)

func newDefaultConverter(t *testing.T) *pathconv.Converter {
	t.Helper()

	c, err := pathconv.NewConverter(nil, "", true)
	require.NoError(t, err)

	return c
}

func TestDetectStyle(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     string
		expected pathconv.Style
	}{
		"drive letter":       {path: `C:\Users`, expected: pathconv.WindowsStyle},
		"drive letter fwd":   {path: "c:/users", expected: pathconv.WindowsStyle},
		"bare drive":         {path: "D:", expected: pathconv.WindowsStyle},
		"unc":                {path: `\\server\share\x`, expected: pathconv.WindowsStyle},
		"unix absolute":      {path: "/home/john", expected: pathconv.UnixStyle},
		"relative backslash": {path: `docs\readme.md`, expected: pathconv.WindowsStyle},
		"relative slash":     {path: "docs/readme.md", expected: pathconv.UnixStyle},
		"bare name":          {path: "readme.md", expected: pathconv.AutoStyle},
		"mixed separators":   {path: `a/b\c`, expected: pathconv.AutoStyle},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, pathconv.DetectStyle(tc.path))
		})
	}
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := newDefaultConverter(t)

	tcs := map[string]struct {
		path     string
		target   pathconv.Style
		expected string
		err      error
	}{
		"windows to unix": {
			path:     `C:\Users\John\file.txt`,
			target:   pathconv.UnixStyle,
			expected: "/mnt/c/Users/John/file.txt",
		},
		"windows lowercase drive": {
			path:     `c:\temp`,
			target:   pathconv.UnixStyle,
			expected: "/mnt/c/temp",
		},
		"unmapped drive falls back": {
			path:     `Z:\data`,
			target:   pathconv.UnixStyle,
			expected: "/mnt/z/data",
		},
		"bare drive to unix": {
			path:     "C:",
			target:   pathconv.UnixStyle,
			expected: "/mnt/c",
		},
		"unc to unix": {
			path:     `\\server\share\dir\file`,
			target:   pathconv.UnixStyle,
			expected: "//server/share/dir/file",
		},
		"unc without components": {
			path:     `\\server\share`,
			target:   pathconv.UnixStyle,
			expected: "//server/share",
		},
		"unc missing share": {
			path:   `\\server`,
			target: pathconv.UnixStyle,
			err:    pathconv.ErrInvalidUNCPath,
		},
		"unix to windows mapped": {
			path:     "/mnt/c/Users/John/file.txt",
			target:   pathconv.WindowsStyle,
			expected: `C:\Users\John\file.txt`,
		},
		"unix to windows unmapped": {
			path:     "/home/john/file.txt",
			target:   pathconv.WindowsStyle,
			expected: `C:\home\john\file.txt`,
		},
		"mount root to windows": {
			path:     "/mnt/c",
			target:   pathconv.WindowsStyle,
			expected: `C:\`,
		},
		"posix double slash to windows": {
			path:     "//server/share/dir",
			target:   pathconv.WindowsStyle,
			expected: `\\server\share\dir`,
		},
		"relative windows to unix": {
			path:     `docs\img\logo.png`,
			target:   pathconv.UnixStyle,
			expected: "docs/img/logo.png",
		},
		"relative unix to windows": {
			path:     "docs/img/logo.png",
			target:   pathconv.WindowsStyle,
			expected: `docs\img\logo.png`,
		},
		"auto from windows": {
			path:     `C:\Users`,
			target:   pathconv.AutoStyle,
			expected: "/mnt/c/Users",
		},
		"auto from unix": {
			path:     "/mnt/d/data",
			target:   pathconv.AutoStyle,
			expected: `D:\data`,
		},
		"auto relative separators only": {
			path:     `a\b\c`,
			target:   pathconv.AutoStyle,
			expected: "a/b/c",
		},
		"auto bare name passes through": {
			path:     "file.txt",
			target:   pathconv.AutoStyle,
			expected: "file.txt",
		},
		"auto mixed separators": {
			path:   `a/b\c`,
			target: pathconv.AutoStyle,
			err:    pathconv.ErrAmbiguousStyle,
		},
		"unknown target style": {
			path:   `C:\Users`,
			target: pathconv.Style("windows"),
			err:    pathconv.ErrUnknownStyle,
		},
		"empty path passes through": {
			path:     "",
			target:   pathconv.UnixStyle,
			expected: "",
		},
		"normalization applies": {
			path:     `C:\Users\\John\.\..\Jane\file.txt`,
			target:   pathconv.UnixStyle,
			expected: "/mnt/c/Users/Jane/file.txt",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := conv.Convert(tc.path, tc.target)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	t.Parallel()

	conv := newDefaultConverter(t)

	paths := []string{
		`C:\Users\John\file.txt`,
		`D:\Data\project\main.go`,
		`E:\`,
		`C:\a\b\c`,
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			t.Parallel()

			unix, err := conv.Convert(p, pathconv.UnixStyle)
			require.NoError(t, err)

			back, err := conv.Convert(unix, pathconv.WindowsStyle)
			require.NoError(t, err)

			assert.Equal(t, pathconv.Normalize(p, pathconv.WindowsStyle), back)
		})
	}
}

func TestConverter_CustomMappings(t *testing.T) {
	t.Parallel()

	mappings, err := pathconv.NewMappings([]pathconv.DriveMapping{
		{Drive: "D:", Mount: "/mnt/data"},
	})
	require.NoError(t, err)

	conv, err := pathconv.NewConverter(mappings, "", true)
	require.NoError(t, err)

	out, err := conv.Convert(`D:\Data\file.txt`, pathconv.UnixStyle)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/data/Data/file.txt", out)

	back, err := conv.Convert("/mnt/data/Data/file.txt", pathconv.WindowsStyle)
	require.NoError(t, err)
	assert.Equal(t, `D:\Data\file.txt`, back)
}

func TestNewMappings_Invalid(t *testing.T) {
	t.Parallel()

	tcs := map[string]pathconv.DriveMapping{
		"empty drive":     {Drive: "", Mount: "/mnt/c"},
		"missing colon":   {Drive: "C", Mount: "/mnt/c"},
		"not a letter":    {Drive: "1:", Mount: "/mnt/1"},
		"relative mount":  {Drive: "C:", Mount: "mnt/c"},
		"bare root mount": {Drive: "C:", Mount: "/"},
	}

	for name, mapping := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := pathconv.NewMappings([]pathconv.DriveMapping{mapping})
			require.ErrorIs(t, err, pathconv.ErrInvalidDriveMapping)
		})
	}
}

func TestNewConverter_InvalidDefaultDrive(t *testing.T) {
	t.Parallel()

	_, err := pathconv.NewConverter(nil, "CD:", true)
	require.ErrorIs(t, err, pathconv.ErrInvalidDriveMapping)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     string
		style    pathconv.Style
		expected string
	}{
		"collapse separators": {
			path:     "/a//b///c",
			style:    pathconv.UnixStyle,
			expected: "/a/b/c",
		},
		"dot segments": {
			path:     "/a/./b/./c",
			style:    pathconv.UnixStyle,
			expected: "/a/b/c",
		},
		"dotdot pops": {
			path:     "/a/b/../c",
			style:    pathconv.UnixStyle,
			expected: "/a/c",
		},
		"dotdot never crosses root": {
			path:     "/../../a",
			style:    pathconv.UnixStyle,
			expected: "/a",
		},
		"relative keeps leading dotdot": {
			path:     "a/../../b",
			style:    pathconv.UnixStyle,
			expected: "../b",
		},
		"windows drive": {
			path:     `C:\a\\b\..\c\`,
			style:    pathconv.WindowsStyle,
			expected: `C:\a\c`,
		},
		"unc preserved": {
			path:     `\\server\share\a\..\b`,
			style:    pathconv.WindowsStyle,
			expected: `\\server\share\b`,
		},
		"empty relative": {
			path:     "a/..",
			style:    pathconv.UnixStyle,
			expected: ".",
		},
		"root stays root": {
			path:     "/",
			style:    pathconv.UnixStyle,
			expected: "/",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pathconv.Normalize(tc.path, tc.style)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, got, pathconv.Normalize(got, tc.style), "normalize must be idempotent")
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("unc", func(t *testing.T) {
		t.Parallel()

		parsed, err := pathconv.Parse(`\\server\share\dir\file.txt`)
		require.NoError(t, err)
		assert.True(t, parsed.UNC)
		assert.True(t, parsed.Absolute)
		assert.Equal(t, "server", parsed.Server)
		assert.Equal(t, "share", parsed.Share)
		assert.Equal(t, []string{"dir", "file.txt"}, parsed.Components)
	})

	t.Run("windows drive", func(t *testing.T) {
		t.Parallel()

		parsed, err := pathconv.Parse(`c:\Users\John`)
		require.NoError(t, err)
		assert.True(t, parsed.Absolute)
		assert.Equal(t, "C:", parsed.Drive)
		assert.Equal(t, []string{"Users", "John"}, parsed.Components)
	})

	t.Run("unix absolute", func(t *testing.T) {
		t.Parallel()

		parsed, err := pathconv.Parse("/home/john")
		require.NoError(t, err)
		assert.True(t, parsed.Absolute)
		assert.Empty(t, parsed.Drive)
		assert.Equal(t, []string{"home", "john"}, parsed.Components)
	})

	t.Run("relative", func(t *testing.T) {
		t.Parallel()

		parsed, err := pathconv.Parse("docs/readme.md")
		require.NoError(t, err)
		assert.False(t, parsed.Absolute)
		assert.Equal(t, []string{"docs", "readme.md"}, parsed.Components)
	})

	t.Run("invalid unc", func(t *testing.T) {
		t.Parallel()

		_, err := pathconv.Parse(`\\server`)
		require.ErrorIs(t, err, pathconv.ErrInvalidUNCPath)
	})
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pathconv.WindowsStyle, pathconv.GetStyle("windows"))
	assert.Equal(t, pathconv.UnixStyle, pathconv.GetStyle(" UNIX "))
	assert.Equal(t, pathconv.AutoStyle, pathconv.GetStyle("other"))

	assert.Equal(t, pathconv.UnixStyle, pathconv.WindowsStyle.Other())
	assert.Equal(t, pathconv.WindowsStyle, pathconv.UnixStyle.Other())
	assert.Equal(t, pathconv.AutoStyle, pathconv.AutoStyle.Other())
}

func TestStyle_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, pathconv.AutoStyle.Validate())
	require.NoError(t, pathconv.WindowsStyle.Validate())
	require.NoError(t, pathconv.UnixStyle.Validate())

	require.ErrorIs(t, pathconv.Style("windows").Validate(), pathconv.ErrUnknownStyle)
	require.ErrorIs(t, pathconv.Style("").Validate(), pathconv.ErrUnknownStyle)
}
