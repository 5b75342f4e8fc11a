package binder

import (
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"strings"
)

// DefaultMaxMemory bounds multipart form parsing.
const DefaultMaxMemory = 10 << 20 // 10 MB

// maxFormIndex bounds list indexes in form keys so a single key cannot
// allocate a huge slice.
const maxFormIndex = 1000

// Form decodes url-encoded or multipart form values into a *map[string]any
// or *any,
// expanding structured keys:
//
//	jobTitle=Go                   -> {"jobTitle": "Go"}
//	skills=go&skills=sql          -> {"skills": ["go", "sql"]}
//	skills[]=go                   -> {"skills": ["go"]}
//	createdBy.name=Ann            -> {"createdBy": {"name": "Ann"}}
//	teamMembers[0].email=a@b.co   -> {"teamMembers": [{"email": "a@b.co"}]}
//
// Requests with another media type yield ErrBinderNotApplicable.
func Form() Func {
	return func(r *http.Request, v any) error {
		mt, err := mediaType(r)
		if err != nil {
			return err
		}

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
		default:
			return fmt.Errorf("%w: got %s", ErrBinderNotApplicable, mt)
		}

		root := make(map[string]any, len(r.PostForm))
		for key, values := range r.PostForm {
			if err := setFormValue(root, key, values); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
		}

		switch target := v.(type) {
		case *map[string]any:
			if target == nil {
				return fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
			}
			if *target == nil {
				*target = root
				return nil
			}
			maps.Copy(*target, root)
		case *any:
			if target == nil {
				return fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
			}
			*target = root
		default:
			return fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
		}
		return nil
	}
}

type segment struct {
	key   string
	index int
	list  bool
}

func setFormValue(root map[string]any, key string, values []string) error {
	path, forceList, err := parseKey(key)
	if err != nil {
		return err
	}

	var value any
	if len(values) == 1 && !forceList {
		value = values[0]
	} else {
		list := make([]any, len(values))
		for i, s := range values {
			list[i] = s
		}
		value = list
	}

	_, err = assign(root, path, value, key)
	return err
}

// parseKey splits "a.b[2].c" into segments. A trailing "[]" marks the key
// as a list.
func parseKey(key string) ([]segment, bool, error) {
	forceList := false
	if trimmed, ok := strings.CutSuffix(key, "[]"); ok {
		key = trimmed
		forceList = true
	}
	if key == "" {
		return nil, false, fmt.Errorf("empty key")
	}

	var path []segment
	for part := range strings.SplitSeq(key, ".") {
		name, rest, _ := strings.Cut(part, "[")
		if name == "" {
			return nil, false, fmt.Errorf("malformed key %q", key)
		}
		path = append(path, segment{key: name})

		for rest != "" {
			idx, after, ok := strings.Cut(rest, "]")
			if !ok {
				return nil, false, fmt.Errorf("malformed key %q", key)
			}
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 || n >= maxFormIndex {
				return nil, false, fmt.Errorf("invalid index in key %q", key)
			}
			path = append(path, segment{index: n, list: true})
			if after == "" {
				break
			}
			next, ok := strings.CutPrefix(after, "[")
			if !ok {
				return nil, false, fmt.Errorf("malformed key %q", key)
			}
			rest = next
		}
	}
	return path, forceList, nil
}

// assign stores value at path inside container and returns the updated
// container. Containers are created on demand.
func assign(container any, path []segment, value any, key string) (any, error) {
	seg := path[0]

	if seg.list {
		list, ok := container.([]any)
		if container != nil && !ok {
			return nil, fmt.Errorf("conflicting types for key %q", key)
		}
		for len(list) <= seg.index {
			list = append(list, nil)
		}
		if len(path) == 1 {
			if list[seg.index] != nil {
				return nil, fmt.Errorf("duplicate key %q", key)
			}
			list[seg.index] = value
			return list, nil
		}
		child, err := assign(list[seg.index], path[1:], value, key)
		if err != nil {
			return nil, err
		}
		list[seg.index] = child
		return list, nil
	}

	obj, ok := container.(map[string]any)
	if container != nil && !ok {
		return nil, fmt.Errorf("conflicting types for key %q", key)
	}
	if obj == nil {
		obj = make(map[string]any)
	}
	if len(path) == 1 {
		if _, exists := obj[seg.key]; exists {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		obj[seg.key] = value
		return obj, nil
	}
	child, err := assign(obj[seg.key], path[1:], value, key)
	if err != nil {
		return nil, err
	}
	obj[seg.key] = child
	return obj, nil
}
