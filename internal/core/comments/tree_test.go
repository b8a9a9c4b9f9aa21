package comments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id int64) *int64 {
	return &id
}

func makeComment(id int64, parentID *int64, createdAt time.Time) *Comment {
	return &Comment{
		ID:        id,
		ArticleID: 1,
		ParentID:  parentID,
		Content:   "comment",
		Status:    StatusApproved,
		CreatedAt: createdAt,
	}
}

func TestAssignLevels_LevelMajorOrdering(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Roots A(t1), B(t2); A has child C(t3); B has child D(t4).
	// Expected: A, B, C, D (levels 0,0,1,1), not a pre-order walk.
	input := []*Comment{
		makeComment(1, nil, t0),                     // A
		makeComment(2, nil, t0.Add(time.Minute)),    // B
		makeComment(3, ptr(1), t0.Add(2*time.Minute)), // C, reply to A
		makeComment(4, ptr(2), t0.Add(3*time.Minute)), // D, reply to B
	}

	views := AssignLevels(input)
	require.Len(t, views, 4)

	assert.Equal(t, []int64{1, 2, 3, 4}, viewIDs(views))
	assert.Equal(t, []int{0, 0, 1, 1}, viewLevels(views))
}

func TestAssignLevels_CreatedAtOrderWithinLevel(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Input deliberately out of creation order.
	input := []*Comment{
		makeComment(2, nil, t0.Add(time.Hour)),
		makeComment(1, nil, t0),
		makeComment(5, ptr(2), t0.Add(3*time.Hour)),
		makeComment(4, ptr(1), t0.Add(2*time.Hour)),
	}

	views := AssignLevels(input)
	require.Len(t, views, 4)

	assert.Equal(t, []int64{1, 2, 4, 5}, viewIDs(views))
	assert.Equal(t, []int{0, 0, 1, 1}, viewLevels(views))
}

func TestAssignLevels_IDTieBreakOnEqualTimestamps(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	input := []*Comment{
		makeComment(9, nil, t0),
		makeComment(3, nil, t0),
		makeComment(7, nil, t0),
	}

	views := AssignLevels(input)
	require.Len(t, views, 3)

	assert.Equal(t, []int64{3, 7, 9}, viewIDs(views))
}

func TestAssignLevels_DeepThread(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	input := []*Comment{
		makeComment(1, nil, t0),
		makeComment(2, ptr(1), t0.Add(time.Minute)),
		makeComment(3, ptr(2), t0.Add(2*time.Minute)),
		makeComment(4, ptr(3), t0.Add(3*time.Minute)),
	}

	views := AssignLevels(input)
	require.Len(t, views, 4)

	assert.Equal(t, []int{0, 1, 2, 3}, viewLevels(views))
}

func TestAssignLevels_UnreachableParentExcluded(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Comment 5 references a parent not in the set; BFS never reaches it.
	input := []*Comment{
		makeComment(1, nil, t0),
		makeComment(5, ptr(99), t0.Add(time.Minute)),
	}

	views := AssignLevels(input)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].ID)
}

func TestAssignLevels_Empty(t *testing.T) {
	views := AssignLevels(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestBuildTree_NestsChildrenUnderParents(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	flat := AssignLevels([]*Comment{
		makeComment(1, nil, t0),
		makeComment(2, nil, t0.Add(time.Minute)),
		makeComment(3, ptr(1), t0.Add(2*time.Minute)),
		makeComment(4, ptr(2), t0.Add(3*time.Minute)),
	})

	roots := BuildTree(flat)
	require.Len(t, roots, 2)

	assert.Equal(t, int64(1), roots[0].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, int64(3), roots[0].Children[0].ID)

	assert.Equal(t, int64(2), roots[1].ID)
	require.Len(t, roots[1].Children, 1)
	assert.Equal(t, int64(4), roots[1].Children[0].ID)
}

func TestBuildTree_RoundTripReproducesFlatOrder(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	flat := AssignLevels([]*Comment{
		makeComment(1, nil, t0),
		makeComment(2, nil, t0.Add(time.Minute)),
		makeComment(3, ptr(1), t0.Add(2*time.Minute)),
		makeComment(4, ptr(2), t0.Add(3*time.Minute)),
		makeComment(5, ptr(3), t0.Add(4*time.Minute)),
		makeComment(6, ptr(1), t0.Add(5*time.Minute)),
	})

	roots := BuildTree(flat)

	// Flattening the tree level by level must reproduce the input order.
	var flattened []CommentView
	frontier := roots
	for len(frontier) > 0 {
		var next []*TreeNode
		for _, node := range frontier {
			flattened = append(flattened, node.CommentView)
			next = append(next, node.Children...)
		}
		frontier = next
	}

	require.Len(t, flattened, len(flat))
	for i := range flat {
		assert.Equal(t, flat[i].ID, flattened[i].ID)
		assert.Equal(t, flat[i].Level, flattened[i].Level)
	}
}

func TestBuildTree_OrphanPromotedToRoot(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	flat := []CommentView{
		{ID: 1, CreatedAt: t0, Level: 0},
		{ID: 2, ParentCommentID: ptr(99), CreatedAt: t0.Add(time.Minute), Level: 0},
	}

	roots := BuildTree(flat)
	require.Len(t, roots, 2)
	assert.Equal(t, int64(1), roots[0].ID)
	assert.Equal(t, int64(2), roots[1].ID)
	assert.Empty(t, roots[1].Children)
}

func TestBuildTree_ChildOrderIsInsertionOrder(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Children of 1 appear in the flat list as 4, 2, 3.
	flat := []CommentView{
		{ID: 1, CreatedAt: t0, Level: 0},
		{ID: 4, ParentCommentID: ptr(1), CreatedAt: t0.Add(3 * time.Minute), Level: 1},
		{ID: 2, ParentCommentID: ptr(1), CreatedAt: t0.Add(time.Minute), Level: 1},
		{ID: 3, ParentCommentID: ptr(1), CreatedAt: t0.Add(2 * time.Minute), Level: 1},
	}

	roots := BuildTree(flat)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 3)

	assert.Equal(t, int64(4), roots[0].Children[0].ID)
	assert.Equal(t, int64(2), roots[0].Children[1].ID)
	assert.Equal(t, int64(3), roots[0].Children[2].ID)
}

func TestBuildTree_ChildrenNeverNil(t *testing.T) {
	roots := BuildTree([]CommentView{{ID: 1, Level: 0}})
	require.Len(t, roots, 1)
	assert.NotNil(t, roots[0].Children, "leaf nodes should serialize children as [], not null")
}

func viewIDs(views []CommentView) []int64 {
	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func viewLevels(views []CommentView) []int {
	levels := make([]int, 0, len(views))
	for _, v := range views {
		levels = append(levels, v.Level)
	}
	return levels
}
