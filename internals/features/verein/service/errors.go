package service

import "fmt"

// NotFoundError: id lookup missed or a page/filter yielded zero rows.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// InvalidSearchError: a search parameter name or value is not acceptable.
// Kept distinct from NotFoundError so the boundary layer can decide how to
// map the two, even though the REST layer maps both to 404.
type InvalidSearchError struct {
	Param string
}

func (e *InvalidSearchError) Error() string {
	if e.Param == "" {
		return "invalid search parameters"
	}
	return fmt.Sprintf("invalid search parameter %q", e.Param)
}

// NameExistsError: the unique club name already exists on create.
type NameExistsError struct {
	Name string
}

func (e *NameExistsError) Error() string {
	return fmt.Sprintf("the club name %q already exists", e.Name)
}

// VersionInvalidError: the If-Match token does not match `"<int>"`.
type VersionInvalidError struct {
	Version string
}

func (e *VersionInvalidError) Error() string {
	return fmt.Sprintf("the version %q is invalid", e.Version)
}

// VersionOutdatedError: the supplied version diverges from the stored one.
type VersionOutdatedError struct {
	Version int
}

func (e *VersionOutdatedError) Error() string {
	return fmt.Sprintf("the version %d is not current", e.Version)
}
