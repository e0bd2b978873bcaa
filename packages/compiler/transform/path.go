package transform

import "hbs-jsx/packages/compiler/output"

// BuildPath chains segments into a left-associative member expression:
// [a b c] becomes a.b.c.
func BuildPath(segments []string) (output.Expression, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyPathSegments
	}
	var path output.Expression = output.NewIdentifier(segments[0])
	for _, segment := range segments[1:] {
		path = AppendPath(path, segment)
	}
	return path, nil
}

// AppendPath adds segment to the tail of path: path.segment.
func AppendPath(path output.Expression, segment string) output.Expression {
	return output.NewMemberExpression(path, segment)
}

// PrependPath puts segment in front of the head of path: segment.path.
// Only the member nodes along the spine from the head are rebuilt, so the
// cost is proportional to the path length. path must be an identifier or a
// member chain rooted at one.
func PrependPath(segment string, path output.Expression) (output.Expression, error) {
	switch p := path.(type) {
	case *output.Identifier:
		return output.NewMemberExpression(output.NewIdentifier(segment), p.Name), nil
	case *output.MemberExpression:
		object, err := PrependPath(segment, p.Object)
		if err != nil {
			return nil, err
		}
		return output.NewMemberExpression(object, p.Property), nil
	default:
		return nil, ErrNotAPath
	}
}
