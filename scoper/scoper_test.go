package scoper

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/scopetools/internal/maputil"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/oaserrors"
	"github.com/erraggy/scopetools/parser"
)

const (
	skeletonFixture = "../testdata/skeleton.yaml"
	usersFixture    = "../testdata/users-service.yaml"
	billingFixture  = "../testdata/billing-service.yaml"
)

// fixtureFeatures groups the fixture services' operations into two features.
func fixtureFeatures() map[string]Feature {
	return map[string]Feature{
		"account-management": {OperationIDs: []string{"listAccounts", "createAccount", "getAccount"}},
		"billing":            {OperationIDs: []string{"listInvoices", "payInvoice"}},
	}
}

// captureLogger records log messages for assertions.
type captureLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *captureLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *captureLogger) has(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func (l *captureLogger) Debug(msg string, attrs ...any) { l.log(msg) }
func (l *captureLogger) Info(msg string, attrs ...any)  { l.log(msg) }
func (l *captureLogger) Warn(msg string, attrs ...any)  { l.log(msg) }
func (l *captureLogger) Error(msg string, attrs ...any) { l.log(msg) }

func (l *captureLogger) With(attrs ...any) parser.Logger { return l }

func TestNew_FixtureRoles(t *testing.T) {
	s, err := New(
		WithSkeletonFile(skeletonFixture),
		WithServiceFiles(usersFixture, billingFixture),
		WithFeatures(fixtureFeatures()),
		WithRoles(map[string][]string{
			"viewer": {"account-management"},
			"admin":  {"account-management", "billing"},
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"admin", "viewer"}, s.Roles())
	assert.Empty(t, s.Warnings())

	master := s.Master()
	require.NotNil(t, master)
	assert.Equal(t, "1.3.5", master.Info.Version)
	assert.Len(t, master.Paths, 4)
	assert.Len(t, s.Dependencies(), 3)

	t.Run("viewer", func(t *testing.T) {
		doc, ok := s.Spec("viewer")
		require.True(t, ok)

		assert.Equal(t,
			[]string{"/users/accounts", "/users/accounts/{accountId}"},
			maputil.SortedKeys(doc.Paths))
		assert.Equal(t, "Viewer", doc.Info.Title)
		assert.Equal(t,
			[]string{"Account", "Address", "ApiError", "Country", "NewAccount"},
			maputil.SortedKeys(doc.Definitions))

		require.Len(t, doc.Tags, 2)
		assert.Equal(t, "accounts", doc.Tags[0].Name)
		assert.Equal(t, "Account lifecycle operations", doc.Tags[0].Description)
		assert.Equal(t, "profiles", doc.Tags[1].Name)

		assert.Equal(t,
			[]string{"createAccount", "getAccount", "listAccounts"},
			s.OperationIDs("viewer"))
		assert.Equal(t, []string{
			"createAccount.getAccount",
			"createAccount.getAccount.listAccounts",
			"getAccount.listAccounts",
		}, s.DependencyOperationIDs("viewer"))
	})

	t.Run("admin", func(t *testing.T) {
		doc, ok := s.Spec("admin")
		require.True(t, ok)

		assert.Len(t, doc.Paths, 4)
		assert.Len(t, doc.Definitions, 8)
		assert.Equal(t, "Admin", doc.Info.Title)

		require.Len(t, doc.Tags, 3)
		assert.Equal(t, "invoices", doc.Tags[0].Name)
		assert.Equal(t, "accounts", doc.Tags[1].Name)
		assert.Equal(t, "profiles", doc.Tags[2].Name)

		assert.Equal(t, []string{
			"payInvoice.getAccount",
			"payInvoice.getAccount.listAccounts",
			"createAccount.getAccount",
			"createAccount.getAccount.listAccounts",
			"getAccount.listAccounts",
		}, s.DependencyOperationIDs("admin"))
	})
}

func TestNew_InMemoryDocuments(t *testing.T) {
	skeleton := parseDoc(t, "skeleton", `swagger: "2.0"
info:
  title: Platform API
  version: 0.0.0
paths: {}
`)
	svcA := parseDoc(t, "svc-a", `swagger: "2.0"
info:
  title: Service A
  version: 1.0.0
paths:
  /a:
    get:
      operationId: opA
      tags:
        - t1
      responses:
        '200':
          description: OK
          schema:
            $ref: '#/definitions/Foo'
definitions:
  Foo:
    type: object
  Unused:
    type: object
`)
	svcB := parseDoc(t, "svc-b", `swagger: "2.0"
info:
  title: Service B
  version: 0.2.0
paths:
  /b:
    get:
      operationId: opB
      tags:
        - t2
      responses:
        '200':
          description: OK
definitions:
  Bar:
    type: object
`)

	s, err := New(
		WithSkeleton(skeleton),
		WithServiceDocuments(svcA, svcB),
		WithFeatures(map[string]Feature{"f1": {OperationIDs: []string{"opA"}}}),
		WithRoles(map[string][]string{"viewer": {"f1"}}),
	)
	require.NoError(t, err)
	assert.Empty(t, s.Warnings())

	master := s.Master()
	assert.Equal(t, "1.2.0", master.Info.Version)
	assert.Equal(t, []string{"/a", "/b"}, maputil.SortedKeys(master.Paths))

	doc, ok := s.Spec("viewer")
	require.True(t, ok)
	assert.Equal(t, []string{"/a"}, maputil.SortedKeys(doc.Paths))
	assert.Equal(t, []string{"Foo"}, maputil.SortedKeys(doc.Definitions))
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "t1", doc.Tags[0].Name)
	assert.Equal(t, "Viewer", doc.Info.Title)
	assert.Equal(t, []string{"opA"}, s.OperationIDs("viewer"))

	// The caller's documents are inputs, not workspaces.
	assert.Len(t, svcA.Paths, 1)
	assert.Len(t, svcA.Definitions, 2)
	assert.Equal(t, "Service A", svcA.Info.Title)
	assert.Equal(t, "0.0.0", skeleton.Info.Version)
}

func TestNew_IdenticalGrantsProduceIdenticalDocuments(t *testing.T) {
	s, err := New(
		WithSkeletonFile(skeletonFixture),
		WithServiceFiles(usersFixture, billingFixture),
		WithFeatures(fixtureFeatures()),
		WithRoles(map[string][]string{
			"viewer":  {"account-management"},
			"auditor": {"account-management"},
		}),
	)
	require.NoError(t, err)

	viewer, ok := s.Spec("viewer")
	require.True(t, ok)
	auditor, ok := s.Spec("auditor")
	require.True(t, ok)

	assert.NotSame(t, viewer, auditor, "each role owns its own document")
	// Titles differ by construction; everything else must match.
	assert.Equal(t, maputil.SortedKeys(viewer.Paths), maputil.SortedKeys(auditor.Paths))
	assert.Equal(t, maputil.SortedKeys(viewer.Definitions), maputil.SortedKeys(auditor.Definitions))
	assert.Equal(t, s.OperationIDs("viewer"), s.OperationIDs("auditor"))
	assert.Equal(t, s.DependencyOperationIDs("viewer"), s.DependencyOperationIDs("auditor"))
}

// Every role document is a closed subset of the master: no path without
// operations, no definition that is unreachable from a surviving operation,
// and nothing the master does not contain.
func TestNew_RoleDocumentsAreClosedSubsets(t *testing.T) {
	s, err := New(
		WithSkeletonFile(skeletonFixture),
		WithServiceFiles(usersFixture, billingFixture),
		WithFeatures(fixtureFeatures()),
		WithRoles(map[string][]string{
			"viewer": {"account-management"},
			"biller": {"billing"},
			"admin":  {"account-management", "billing"},
		}),
	)
	require.NoError(t, err)

	master := s.Master()
	for _, roleID := range s.Roles() {
		doc, ok := s.Spec(roleID)
		require.True(t, ok)

		for path, item := range doc.Paths {
			assert.Contains(t, master.Paths, path, "role %s: path not in master", roleID)
			assert.True(t, hasOperations(item), "role %s: path %s has no operations", roleID, path)
		}

		keep := reachableDefinitions(doc.Definitions, pathRefSeeds(doc.Paths))
		for name := range doc.Definitions {
			assert.Contains(t, master.Definitions, name, "role %s: definition not in master", roleID)
			assert.True(t, keep[name], "role %s: definition %s unreachable from its operations", roleID, name)
		}
		for name := range keep {
			if master.Definitions[name] == nil {
				continue // dangling in the master too, nothing to carry
			}
			assert.Contains(t, doc.Definitions, name, "role %s: reachable definition %s missing", roleID, name)
		}
	}
}

func TestNew_UnknownFeatureSkipped(t *testing.T) {
	s, err := New(
		WithSkeletonFile(skeletonFixture),
		WithServiceFiles(usersFixture, billingFixture),
		WithFeatures(fixtureFeatures()),
		WithRoles(map[string][]string{
			"auditor": {"account-management", "reporting"},
			"viewer":  {"account-management"},
		}),
	)
	require.NoError(t, err)

	auditor, ok := s.Spec("auditor")
	require.True(t, ok)
	viewer, ok := s.Spec("viewer")
	require.True(t, ok)

	// The unknown feature grants nothing, so both roles see the same document.
	assert.Equal(t, maputil.SortedKeys(viewer.Paths), maputil.SortedKeys(auditor.Paths))
	assert.Equal(t, s.OperationIDs("viewer"), s.OperationIDs("auditor"))

	require.Len(t, s.Warnings(), 1)
	assert.Equal(t, `role "auditor" references unknown feature "reporting"`, s.Warnings()[0])
}

func TestNew_EmptyRole(t *testing.T) {
	s, err := New(
		WithSkeletonFile(skeletonFixture),
		WithServiceFiles(usersFixture),
		WithFeatures(fixtureFeatures()),
		WithRoles(map[string][]string{"nobody": {}}),
	)
	require.NoError(t, err)

	doc, ok := s.Spec("nobody")
	require.True(t, ok)
	assert.Empty(t, doc.Paths)
	assert.Empty(t, doc.Definitions)
	assert.Empty(t, doc.Tags)
	assert.Equal(t, "Nobody", doc.Info.Title)
	assert.Empty(t, s.OperationIDs("nobody"))
	assert.Empty(t, s.DependencyOperationIDs("nobody"))
}

func TestNew_Accessors(t *testing.T) {
	s, err := New(
		WithSkeletonFile(skeletonFixture),
		WithServiceFiles(usersFixture, billingFixture),
		WithFeatures(fixtureFeatures()),
		WithRoles(map[string][]string{"viewer": {"account-management"}}),
	)
	require.NoError(t, err)

	t.Run("unknown role", func(t *testing.T) {
		doc, ok := s.Spec("ghost")
		assert.False(t, ok)
		assert.Nil(t, doc)
		assert.Nil(t, s.OperationIDs("ghost"))
		assert.Nil(t, s.DependencyOperationIDs("ghost"))
	})

	t.Run("stable document identity", func(t *testing.T) {
		first, ok := s.Spec("viewer")
		require.True(t, ok)
		second, ok := s.Spec("viewer")
		require.True(t, ok)
		assert.Same(t, first, second)
		assert.NotSame(t, first, s.Master())
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		ids := s.OperationIDs("viewer")
		require.NotEmpty(t, ids)
		ids[0] = "mutated"
		assert.Equal(t, "createAccount", s.OperationIDs("viewer")[0])

		chains := s.DependencyOperationIDs("viewer")
		require.NotEmpty(t, chains)
		chains[0] = "mutated"
		assert.Equal(t, "createAccount.getAccount", s.DependencyOperationIDs("viewer")[0])
	})

	t.Run("dependency table is a copy", func(t *testing.T) {
		deps := s.Dependencies()
		deps.Set("injected", []string{"anything"})
		assert.NotContains(t, s.Dependencies(), "injected")
	})
}

func TestNew_MasterOverride(t *testing.T) {
	features := map[string]Feature{
		"account-read": {OperationIDs: []string{"listAccounts", "getAccount"}},
	}

	t.Run("from file with dependencies", func(t *testing.T) {
		deps := merger.DependencyTable{}
		deps.Set("createAccount", []string{"getAccount"})
		deps.Set("getAccount", []string{"listAccounts"})

		s, err := New(
			WithMasterOverrideFile(usersFixture),
			WithDependencies(deps),
			WithFeatures(features),
			WithRoles(map[string][]string{"support": {"account-read"}}),
		)
		require.NoError(t, err)

		// The override is the master verbatim: no prefixing, version kept.
		master := s.Master()
		assert.Equal(t, "1.2.0", master.Info.Version)
		assert.Equal(t,
			[]string{"/accounts", "/accounts/{accountId}"},
			maputil.SortedKeys(master.Paths))

		doc, ok := s.Spec("support")
		require.True(t, ok)
		assert.Equal(t, "Support", doc.Info.Title)
		require.NotNil(t, doc.Paths["/accounts"])
		assert.Nil(t, doc.Paths["/accounts"].Post, "createAccount is not granted")
		assert.Equal(t,
			[]string{"Account", "Address", "ApiError", "Country"},
			maputil.SortedKeys(doc.Definitions))
		assert.Equal(t, []string{"getAccount.listAccounts"},
			s.DependencyOperationIDs("support"))
	})

	t.Run("parsed without dependencies", func(t *testing.T) {
		result, err := parser.ParseWithOptions(parser.WithFilePath(usersFixture))
		require.NoError(t, err)

		s, err := New(
			WithMasterOverride(result.Document),
			WithFeatures(features),
			WithRoles(map[string][]string{"support": {"account-read"}}),
		)
		require.NoError(t, err)

		assert.Empty(t, s.Dependencies())
		assert.Empty(t, s.DependencyOperationIDs("support"),
			"without a table every chain resolves to nothing")

		// The caller keeps ownership of the supplied document.
		delete(result.Document.Paths, "/accounts")
		assert.Len(t, s.Master().Paths, 2)
	})
}

func TestNew_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		fragment string
	}{
		{
			name:     "no inputs",
			opts:     nil,
			fragment: "a skeleton document is required",
		},
		{
			name: "both skeleton forms",
			opts: []Option{
				WithSkeletonFile(skeletonFixture),
				WithSkeleton(&parser.Document{}),
				WithServiceFiles(usersFixture),
			},
			fragment: "use only one of WithSkeletonFile or WithSkeleton",
		},
		{
			name: "skeleton without services",
			opts: []Option{
				WithSkeletonFile(skeletonFixture),
			},
			fragment: "at least 1 service document is required",
		},
		{
			name: "dependencies without override",
			opts: []Option{
				WithSkeletonFile(skeletonFixture),
				WithServiceFiles(usersFixture),
				WithDependencies(merger.DependencyTable{}),
			},
			fragment: "alongside a master override",
		},
		{
			name: "override combined with skeleton",
			opts: []Option{
				WithMasterOverrideFile(usersFixture),
				WithSkeletonFile(skeletonFixture),
			},
			fragment: "cannot be combined with skeleton or service inputs",
		},
		{
			name: "override combined with services",
			opts: []Option{
				WithMasterOverrideFile(usersFixture),
				WithServiceFiles(billingFixture),
			},
			fragment: "cannot be combined with skeleton or service inputs",
		},
		{
			name: "both override forms",
			opts: []Option{
				WithMasterOverrideFile(usersFixture),
				WithMasterOverride(&parser.Document{}),
			},
			fragment: "use only one of WithMasterOverrideFile or WithMasterOverride",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig), "expected a configuration error, got: %v", err)
			assert.Contains(t, err.Error(), "scoper: invalid options:")
			assert.Contains(t, err.Error(), tt.fragment)
		})
	}
}

func TestNew_LoadFailures(t *testing.T) {
	t.Run("missing skeleton", func(t *testing.T) {
		_, err := New(
			WithSkeletonFile("../testdata/does-not-exist.yaml"),
			WithServiceFiles(usersFixture),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scoper: failed to load skeleton")
	})

	t.Run("missing service", func(t *testing.T) {
		_, err := New(
			WithSkeletonFile(skeletonFixture),
			WithServiceFiles("../testdata/does-not-exist.yaml"),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scoper: failed to load service")
	})

	t.Run("missing override", func(t *testing.T) {
		_, err := New(
			WithMasterOverrideFile("../testdata/does-not-exist.yaml"),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scoper: failed to load master override")
	})
}

// mapLoader serves documents from memory, keyed by path.
type mapLoader struct {
	docs map[string]*parser.Document
}

func (l mapLoader) Load(path string) (*parser.Document, error) {
	doc, ok := l.docs[path]
	if !ok {
		return nil, fmt.Errorf("no document for %s", path)
	}
	return doc, nil
}

func TestNew_CustomLoader(t *testing.T) {
	skeleton := parseDoc(t, "skeleton", `swagger: "2.0"
info:
  title: Platform API
  version: 0.0.0
paths: {}
`)
	service := parseDoc(t, "service", `swagger: "2.0"
info:
  title: Things API
  version: 1.0.0
basePath: /things
paths:
  /items:
    get:
      operationId: listItems
      responses:
        '200':
          description: OK
`)
	loader := mapLoader{docs: map[string]*parser.Document{
		"skeleton": skeleton,
		"things":   service,
	}}

	s, err := New(
		WithLoader(loader),
		WithSkeletonFile("skeleton"),
		WithServiceFiles("things"),
		WithFeatures(map[string]Feature{"catalog": {OperationIDs: []string{"listItems"}}}),
		WithRoles(map[string][]string{"shopper": {"catalog"}}),
	)
	require.NoError(t, err)

	doc, ok := s.Spec("shopper")
	require.True(t, ok)
	assert.Equal(t, []string{"/things/items"}, maputil.SortedKeys(doc.Paths))

	t.Run("loader failure surfaces", func(t *testing.T) {
		_, err := New(
			WithLoader(loader),
			WithSkeletonFile("skeleton"),
			WithServiceFiles("missing"),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scoper: failed to load service missing")
		assert.Contains(t, err.Error(), "no document for missing")
	})
}

func TestNew_Logging(t *testing.T) {
	logger := &captureLogger{}

	_, err := New(
		WithSkeletonFile(skeletonFixture),
		WithServiceFiles(usersFixture, billingFixture),
		WithFeatures(fixtureFeatures()),
		WithRoles(map[string][]string{"viewer": {"account-management"}}),
		WithLogger(logger),
	)
	require.NoError(t, err)

	assert.True(t, logger.has("merged master document"), "merge diagnostics flow through the build logger")
	assert.True(t, logger.has("scoped role"))
	assert.True(t, logger.has("built role documents"))
}
