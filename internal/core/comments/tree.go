package comments

import "sort"

// AssignLevels converts a flat set of approved comments into the
// level-ordered list served by the comments endpoint.
//
// Traversal is an explicit breadth-first expansion over a parent→children
// adjacency index built in application code, so the same hierarchy is
// reproduced without database-specific recursive query syntax:
// level 0 is every comment with no parent, level N is every child of a
// level N-1 comment. A comment whose parent is not part of the input set
// is never reached and therefore excluded.
//
// Output ordering is level ascending, then createdAt ascending within a
// level (ID ascending as the final tie-break). Siblings under different
// parents interleave at the same depth: clients must regroup by
// parentCommentId, not by list adjacency.
func AssignLevels(comments []*Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	if len(comments) == 0 {
		return views
	}

	children := make(map[int64][]*Comment)
	var roots []*Comment
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	level := 0
	frontier := roots
	for len(frontier) > 0 {
		sort.Slice(frontier, func(i, j int) bool {
			if !frontier[i].CreatedAt.Equal(frontier[j].CreatedAt) {
				return frontier[i].CreatedAt.Before(frontier[j].CreatedAt)
			}
			return frontier[i].ID < frontier[j].ID
		})

		var next []*Comment
		for _, c := range frontier {
			views = append(views, toView(c, level))
			next = append(next, children[c.ID]...)
		}

		frontier = next
		level++
	}

	return views
}

// BuildTree nests a flat comment list into root nodes with children.
//
// Two passes: the first builds an identity map from ID to a node with an
// empty children slice; the second links each node under its parent when
// the parent is present in the input, and otherwise promotes it to a root:
// a reply whose parent was removed or never included silently becomes
// top-level. Root order and child order are the
// insertion order of the input, so feeding the level-ordered output of
// AssignLevels yields level-major ordering at every depth.
func BuildTree(flat []CommentView) []*TreeNode {
	nodes := make(map[int64]*TreeNode, len(flat))
	for _, v := range flat {
		nodes[v.ID] = &TreeNode{CommentView: v, Children: []*TreeNode{}}
	}

	roots := []*TreeNode{}
	for _, v := range flat {
		node := nodes[v.ID]
		if v.ParentCommentID != nil {
			if parent, ok := nodes[*v.ParentCommentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

func toView(c *Comment, level int) CommentView {
	return CommentView{
		ID:              c.ID,
		ParentCommentID: c.ParentID,
		AuthorName:      c.AuthorName,
		Content:         c.Content,
		CreatedAt:       c.CreatedAt,
		Level:           level,
	}
}
