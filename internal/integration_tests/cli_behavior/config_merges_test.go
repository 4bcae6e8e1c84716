package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/cli"
	"github.com/specialistvlad/jsdmbrs/internal/export"
	"github.com/specialistvlad/jsdmbrs/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: project settings from the config file reach the exported model
func TestCLI_ConfigFile_ReachesExport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{
		"jsdmbrs.yaml": `
			log:
			  level: error
			project:
			  name: acme-shop
			  package_tree: com.acme.shop
			  existing_driver: mysql
			export:
			  format: json
		`,
		"shop.jsdmbrs": `
			Database {
			    DB driver: mysql;
			    DB name: "shop";
			}
			class Person {
			    personId: identifier get;
			    Constructors {
			        empty;
			        default;
			    }
			}
		`,
	})
	var outW, errW bytes.Buffer

	// --- Act ---
	err := cli.Execute(context.Background(),
		[]string{"generate", "--config", filepath.Join(root, "jsdmbrs.yaml"), filepath.Join(root, "shop.jsdmbrs")},
		&outW, &errW)

	// --- Assert ---
	require.NoError(t, err, errW.String())

	var doc export.Document
	require.NoError(t, json.Unmarshal(outW.Bytes(), &doc))
	require.Equal(t, "acme-shop", doc.Project.Name)
	require.Equal(t, "com.acme.shop", doc.Project.PackageTree)
	require.Equal(t, "AcmeShopApplication.java", doc.Project.AppFileName)
	require.False(t, doc.Project.AddDatabaseDependency)
}

// Test for: a driver that conflicts with the configured existing driver
func TestCLI_ConfigFile_DriverConflict(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"jsdmbrs.yaml": "project:\n  existing_driver: oracle\n",
		"shop.jsdmbrs": `
			Database {
			    DB driver: mysql;
			    DB name: "shop";
			}
			class Person {
			    personId: identifier get;
			    Constructors {
			        empty;
			        default;
			    }
			}
		`,
	})
	outPath := filepath.Join(root, "out.json")
	var errW bytes.Buffer

	err := cli.Execute(context.Background(),
		[]string{"generate", "-c", filepath.Join(root, "jsdmbrs.yaml"), "-o", outPath, filepath.Join(root, "shop.jsdmbrs")},
		&bytes.Buffer{}, &errW)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, cli.ExitInvalidModel, exitErr.Code)
	require.Contains(t, errW.String(), "database_driver_error")

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	require.Empty(t, data)
}
