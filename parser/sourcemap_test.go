package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_IsKnown(t *testing.T) {
	tests := []struct {
		name string
		loc  SourceLocation
		want bool
	}{
		{"known location", SourceLocation{Line: 1, Column: 1, File: "test.yaml"}, true},
		{"zero line", SourceLocation{Line: 0, Column: 1, File: "test.yaml"}, false},
		{"empty struct", SourceLocation{}, false},
		{"negative line", SourceLocation{Line: -1, Column: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.IsKnown())
		})
	}
}

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  SourceLocation
		want string
	}{
		{"file with position", SourceLocation{Line: 10, Column: 5, File: "test.yaml"}, "test.yaml:10:5"},
		{"position only", SourceLocation{Line: 10, Column: 5}, "10:5"},
		{"file only", SourceLocation{File: "test.yaml"}, "test.yaml"},
		{"nothing known", SourceLocation{}, "<unknown>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.String())
		})
	}
}

func TestSourceMap_NilSafety(t *testing.T) {
	var sm *SourceMap

	assert.False(t, sm.Get("$.test").IsKnown())
	assert.False(t, sm.GetKey("$.test").IsKnown())
	assert.False(t, sm.GetRef("$.test").Origin.IsKnown())
	assert.False(t, sm.Has("$.test"))
	assert.Zero(t, sm.Len())
	assert.Nil(t, sm.Paths())
	assert.Nil(t, sm.Copy())

	// none of these may panic on a nil receiver or nil argument
	sm.Merge(NewSourceMap())
	NewSourceMap().Merge(nil)
	sm.SetFile("test.yaml")
	sm.set("$.test", SourceLocation{Line: 1, Column: 1})
	sm.setKey("$.test", SourceLocation{Line: 1, Column: 1})
	sm.setRef("$.test", RefLocation{})
}

func TestSourceMap_LazyInitialization(t *testing.T) {
	// setters must initialize the maps of a zero-value struct
	sm := &SourceMap{}

	sm.set("$.a", SourceLocation{Line: 1, Column: 1})
	assert.True(t, sm.Has("$.a"))

	sm.setKey("$.b", SourceLocation{Line: 2, Column: 1})
	assert.True(t, sm.GetKey("$.b").IsKnown())

	sm.setRef("$.c", RefLocation{TargetRef: "test"})
	assert.Equal(t, "test", sm.GetRef("$.c").TargetRef)
}

func TestSourceMap_MergeLazyInit(t *testing.T) {
	sm := &SourceMap{}
	other := NewSourceMap()
	other.set("$.test", SourceLocation{Line: 1, Column: 1})
	other.setKey("$.test", SourceLocation{Line: 1, Column: 1})
	other.setRef("$.test", RefLocation{TargetRef: "ref"})

	sm.Merge(other)

	assert.True(t, sm.Has("$.test"))
	assert.True(t, sm.GetKey("$.test").IsKnown())
	assert.Equal(t, "ref", sm.GetRef("$.test").TargetRef)
}

func TestSourceMap_BasicOperations(t *testing.T) {
	sm := NewSourceMap()
	assert.Zero(t, sm.Len())
	assert.False(t, sm.Has("$.test"))

	sm.set("$.info", SourceLocation{Line: 2, Column: 1, File: "test.yaml"})
	sm.set("$.info.title", SourceLocation{Line: 3, Column: 3, File: "test.yaml"})
	sm.setKey("$.info.title", SourceLocation{Line: 3, Column: 3, File: "test.yaml"})

	loc := sm.Get("$.info")
	require.True(t, loc.IsKnown())
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 1, loc.Column)

	assert.True(t, sm.GetKey("$.info.title").IsKnown())
	assert.True(t, sm.Has("$.info"))
	assert.False(t, sm.Has("$.nonexistent"))
	assert.Equal(t, 2, sm.Len())

	// sorted
	assert.Equal(t, []string{"$.info", "$.info.title"}, sm.Paths())
}

func TestSourceMap_Copy(t *testing.T) {
	sm := NewSourceMap()
	sm.set("$.test", SourceLocation{Line: 1, Column: 1, File: "test.yaml"})
	sm.setKey("$.test", SourceLocation{Line: 1, Column: 1, File: "test.yaml"})
	sm.setRef("$.ref", RefLocation{
		Origin:    SourceLocation{Line: 5, Column: 3, File: "test.yaml"},
		TargetRef: "#/definitions/Account",
	})

	copied := sm.Copy()

	assert.Equal(t, sm.Len(), copied.Len())
	assert.True(t, copied.Has("$.test"))
	assert.Equal(t, 1, copied.Get("$.test").Line)
	assert.Equal(t, "#/definitions/Account", copied.GetRef("$.ref").TargetRef)

	// mutations to the original must not bleed into the copy
	sm.set("$.test", SourceLocation{Line: 99, Column: 99, File: "changed.yaml"})
	assert.Equal(t, 1, copied.Get("$.test").Line)
}

func TestSourceMap_Merge(t *testing.T) {
	sm1 := NewSourceMap()
	sm1.set("$.a", SourceLocation{Line: 1, Column: 1, File: "a.yaml"})
	sm1.setKey("$.a", SourceLocation{Line: 1, Column: 1, File: "a.yaml"})

	sm2 := NewSourceMap()
	sm2.set("$.b", SourceLocation{Line: 2, Column: 2, File: "b.yaml"})
	sm2.set("$.a", SourceLocation{Line: 99, Column: 99, File: "b.yaml"})

	sm1.Merge(sm2)

	assert.Equal(t, 2, sm1.Len())
	assert.True(t, sm1.Has("$.b"))
	// the incoming map wins on collision
	assert.Equal(t, 99, sm1.Get("$.a").Line)
}

func TestSourceMap_RefTracking(t *testing.T) {
	sm := NewSourceMap()
	ref := RefLocation{
		Origin:    SourceLocation{Line: 10, Column: 5, File: "test.yaml"},
		Target:    SourceLocation{Line: 50, Column: 3, File: "test.yaml"},
		TargetRef: "#/definitions/Account",
	}
	sm.setRef("$.paths./accounts.get.responses['200'].schema", ref)

	got := sm.GetRef("$.paths./accounts.get.responses['200'].schema")
	assert.Equal(t, ref.TargetRef, got.TargetRef)
	assert.Equal(t, 10, got.Origin.Line)
}

func TestSourceMap_SetFile(t *testing.T) {
	sm := NewSourceMap()
	sm.set("$.info", SourceLocation{Line: 1, Column: 1})
	sm.setKey("$.info", SourceLocation{Line: 1, Column: 1})
	sm.setRef("$.ref", RefLocation{
		Origin:    SourceLocation{Line: 5, Column: 3},
		TargetRef: "#/test",
	})

	sm.SetFile("updated.yaml")

	assert.Equal(t, "updated.yaml", sm.Get("$.info").File)
	assert.Equal(t, "updated.yaml", sm.GetKey("$.info").File)
	assert.Equal(t, "updated.yaml", sm.GetRef("$.ref").Origin.File)
}

func TestChildJSONPath(t *testing.T) {
	tests := []struct {
		parent string
		key    string
		want   string
	}{
		{"$", "info", "$.info"},
		{"$.info", "title", "$.info.title"},
		{"$.paths", "/users", "$.paths./users"},
		{"$.paths", "/users/{id}", "$.paths./users/{id}"},
		{"$", "1invalid", "$['1invalid']"},
		{"$", "has.dot", "$['has.dot']"},
		{"$", "has[bracket", "$['has[bracket']"},
		{"$", "has]bracket", "$['has]bracket']"},
		{"$", "has'quote", "$['has\\'quote']"},
		{"$", `has"double`, `$['has"double']`},
		{"$", "has space", "$['has space']"},
		{"$", "has\ttab", "$['has\ttab']"},
		{"$", "", "$['']"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, childJSONPath(tt.parent, tt.key))
		})
	}
}

func TestJSONPathNeedsBrackets(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"simple", false},
		{"camelCase", false},
		{"with_underscore", false},
		{"with-dash", false},
		{"1startsWithDigit", true},
		{"has.dot", true},
		{"has[bracket", true},
		{"has]bracket", true},
		{"has'quote", true},
		{`has"double`, true},
		{"has space", true},
		{"has\ttab", true},
		{"has\nnewline", true},
		{"has\rcarriage", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonPathNeedsBrackets(tt.key))
		})
	}
}

func TestBuildSourceMap_Basic(t *testing.T) {
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
paths: {}`

	result, err := ParseWithOptions(
		WithBytes([]byte(yaml)),
		WithSourceMap(true),
	)
	require.NoError(t, err)

	sm := result.SourceMap
	require.NotNil(t, sm)

	assert.True(t, sm.Has("$"))

	// value position points at the mapping content, key position at the key
	require.True(t, sm.Has("$.info"))
	assert.Equal(t, 3, sm.Get("$.info").Line)
	assert.Equal(t, 2, sm.GetKey("$.info").Line)

	require.True(t, sm.Has("$.info.title"))
	assert.Equal(t, 3, sm.Get("$.info.title").Line)
	assert.True(t, sm.GetKey("$.info.title").IsKnown())
}

func TestBuildSourceMap_ArrayElements(t *testing.T) {
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
tags:
  - name: accounts
  - name: invoices
paths: {}`

	result, err := ParseWithOptions(
		WithBytes([]byte(yaml)),
		WithSourceMap(true),
	)
	require.NoError(t, err)

	sm := result.SourceMap
	require.NotNil(t, sm)

	assert.True(t, sm.Has("$.tags"))
	assert.True(t, sm.Has("$.tags[0]"))
	assert.True(t, sm.Has("$.tags[1]"))
	assert.True(t, sm.Has("$.tags[0].name"))
	assert.Greater(t, sm.Get("$.tags[1]").Line, sm.Get("$.tags[0]").Line)
}

func TestBuildSourceMap_RefTracking(t *testing.T) {
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
paths:
  /accounts:
    get:
      responses:
        '200':
          schema:
            $ref: '#/definitions/Account'
definitions:
  Account:
    type: object`

	result, err := ParseWithOptions(
		WithBytes([]byte(yaml)),
		WithSourceMap(true),
	)
	require.NoError(t, err)

	sm := result.SourceMap
	require.NotNil(t, sm)

	// tracked at the parent schema object; '200' needs brackets, the path
	// template does not
	ref := sm.GetRef("$.paths./accounts.get.responses['200'].schema")
	assert.Equal(t, "#/definitions/Account", ref.TargetRef)
	assert.True(t, ref.Origin.IsKnown())

	// targets are not resolved during parsing; consumers report dangling refs
	assert.False(t, ref.Target.IsKnown())

	// the definition location lets consumers correlate origin and target
	assert.True(t, sm.Get("$.definitions.Account").IsKnown())
}

func TestBuildSourceMap_JSON(t *testing.T) {
	json := `{
  "swagger": "2.0",
  "info": {
    "title": "Users API",
    "version": "1.2.0"
  },
  "paths": {}
}`

	result, err := ParseWithOptions(
		WithBytes([]byte(json)),
		WithSourceMap(true),
	)
	require.NoError(t, err)

	sm := result.SourceMap
	require.NotNil(t, sm, "JSON input should get line tracking too")
	assert.True(t, sm.Has("$.info"))
	assert.True(t, sm.Has("$.info.title"))
}

func TestBuildSourceMap_FilePath(t *testing.T) {
	result, err := ParseWithOptions(
		WithFilePath("../testdata/users-service.yaml"),
		WithSourceMap(true),
	)
	require.NoError(t, err)
	require.NotNil(t, result.SourceMap)

	assert.Equal(t, "../testdata/users-service.yaml", result.SourceMap.Get("$.info").File)
}

func TestBuildSourceMap_SyntheticFileNames(t *testing.T) {
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
paths: {}`

	t.Run("ParseBytes", func(t *testing.T) {
		p := New()
		p.BuildSourceMap = true
		result, err := p.ParseBytes([]byte(yaml))
		require.NoError(t, err)
		require.NotNil(t, result.SourceMap)
		assert.Equal(t, "ParseBytes.yaml", result.SourceMap.Get("$.info").File)
	})

	t.Run("ParseReader", func(t *testing.T) {
		p := New()
		p.BuildSourceMap = true
		result, err := p.ParseReader(strings.NewReader(yaml))
		require.NoError(t, err)
		require.NotNil(t, result.SourceMap)
		assert.Equal(t, "ParseReader.yaml", result.SourceMap.Get("$.info").File)
	})
}

func TestBuildSourceMap_Disabled(t *testing.T) {
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
paths: {}`

	result, err := ParseWithOptions(WithBytes([]byte(yaml)))
	require.NoError(t, err)
	assert.Nil(t, result.SourceMap, "source map is off by default")

	result, err = ParseWithOptions(WithBytes([]byte(yaml)), WithSourceMap(false))
	require.NoError(t, err)
	assert.Nil(t, result.SourceMap)
}

func TestParseResult_CopyWithSourceMap(t *testing.T) {
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
paths: {}`

	result, err := ParseWithOptions(
		WithBytes([]byte(yaml)),
		WithSourceMap(true),
	)
	require.NoError(t, err)

	copied := result.Copy()
	require.NotNil(t, copied.SourceMap)
	assert.NotSame(t, result.SourceMap, copied.SourceMap)
	assert.True(t, copied.SourceMap.Has("$.info"))
}

func TestBuildSourceMap_SpecialPathCharacters(t *testing.T) {
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
paths:
  /users/{userId}:
    get:
      responses:
        '200':
          description: OK
  /items.json:
    get:
      responses:
        '200':
          description: OK`

	result, err := ParseWithOptions(
		WithBytes([]byte(yaml)),
		WithSourceMap(true),
	)
	require.NoError(t, err)

	sm := result.SourceMap
	// slashes and braces stay in dot notation; a dot forces brackets
	assert.True(t, sm.Has("$.paths./users/{userId}"))
	assert.True(t, sm.Has("$.paths['/items.json']"))
}

func TestBuildSourceMap_DefinitionLocations(t *testing.T) {
	// Collision warnings report where the colliding path or definition was
	// declared, so the definitions section must be tracked precisely.
	yaml := `swagger: "2.0"
info:
  title: Users API
  version: 1.2.0
paths: {}
definitions:
  Account:
    type: object
  Invoice:
    type: object`

	result, err := ParseWithOptions(
		WithBytes([]byte(yaml)),
		WithSourceMap(true),
	)
	require.NoError(t, err)

	sm := result.SourceMap
	assert.Equal(t, 7, sm.GetKey("$.definitions.Account").Line)
	assert.Equal(t, 9, sm.GetKey("$.definitions.Invoice").Line)
}

func TestBuildSourceMap_NilRoot(t *testing.T) {
	sm := buildSourceMap(nil, "test.yaml")
	require.NotNil(t, sm)
	assert.Zero(t, sm.Len())
}

func TestRecordNode_NilNode(t *testing.T) {
	sm := NewSourceMap()
	recordNode(nil, "$", sm, "test.yaml")
	assert.Zero(t, sm.Len())
}
