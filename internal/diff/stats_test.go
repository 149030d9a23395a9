package diff_test

import (
	"testing"

	"github.com/RobertKozak/mr-comment/internal/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat(t *testing.T) {
	t.Parallel()

	raw := `diff --git a/main.go b/main.go
index 1a2b3c4..5d6e7f8 100644
--- a/main.go
+++ b/main.go
@@ -1,2 +1,2 @@
 package main
-func old() {}
+func new() {}
@@ -10,1 +10,2 @@
 var x int
+var y int
diff --git a/added.txt b/added.txt
new file mode 100644
index 0000000..9abcdef
--- /dev/null
+++ b/added.txt
@@ -0,0 +1 @@
+hello
diff --git a/removed.txt b/removed.txt
deleted file mode 100644
index 9abcdef..0000000
--- a/removed.txt
+++ /dev/null
@@ -1 +0,0 @@
-goodbye
`

	stats, err := diff.Stat(raw)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesModified)
	assert.Equal(t, 1, stats.FilesAdded)
	assert.Equal(t, 1, stats.FilesDeleted)
	assert.Equal(t, 0, stats.FilesBinary)
	assert.Equal(t, 4, stats.Hunks)
	assert.Equal(t, 3, stats.TotalFiles())
}

func TestStat_Empty(t *testing.T) {
	t.Parallel()

	stats, err := diff.Stat("")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalFiles())
}
