package hub

import "context"

// User represents a user account.
type User struct {
	client *Client
	data   *UserData
}

func newUser(c *Client, data *UserData) *User {
	if data == nil {
		return nil
	}
	return &User{client: c, data: data}
}

var emptyUserData UserData

func (u *User) d() *UserData {
	if u == nil || u.data == nil {
		return &emptyUserData
	}
	return u.data
}

// Client returns the client u was fetched with, or nil.
func (u *User) Client() *Client {
	if u == nil {
		return nil
	}
	return u.client
}

// Login returns the username.
func (u *User) Login() string {
	return u.d().Login
}

// Name returns the display name. It is only sent by the single-user endpoints.
func (u *User) Name() string {
	return u.d().Name
}

// Type returns the account type ("User", "Organization" or "Bot").
func (u *User) Type() string {
	return u.d().Type
}

// AvatarURL returns the avatar image URL.
func (u *User) AvatarURL() string {
	return u.d().AvatarURL
}

// HTMLURL returns the URL of the profile page.
func (u *User) HTMLURL() string {
	return u.d().HTMLURL
}

// Data returns a copy of the underlying user data.
func (u *User) Data() UserData {
	return *u.d()
}

// Key returns the login, which identifies the user.
func (u *User) Key() string {
	return u.Login()
}

// Equal reports whether u and other are the same account.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.Key() == other.Key()
}

// String returns the login.
func (u *User) String() string {
	return u.Login()
}

// Repositories lists the user's public repositories as summaries.
func (u *User) Repositories(ctx context.Context, opts ...ListOption) ([]*Repository, error) {
	if u == nil || u.client == nil || u.data == nil {
		return nil, newNotWiredError("user", "Repositories")
	}
	return u.client.ListUserRepositories(ctx, u.Login(), opts...)
}

// Organization represents an organization account.
type Organization struct {
	client *Client
	data   *OrganizationData
}

func newOrganization(c *Client, data *OrganizationData) *Organization {
	if data == nil {
		return nil
	}
	return &Organization{client: c, data: data}
}

var emptyOrganizationData OrganizationData

func (o *Organization) d() *OrganizationData {
	if o == nil || o.data == nil {
		return &emptyOrganizationData
	}
	return o.data
}

// Client returns the client o was fetched with, or nil.
func (o *Organization) Client() *Client {
	if o == nil {
		return nil
	}
	return o.client
}

// Login returns the organization login.
func (o *Organization) Login() string {
	return o.d().Login
}

// Description returns the organization description.
func (o *Organization) Description() string {
	return o.d().Description
}

// AvatarURL returns the avatar image URL.
func (o *Organization) AvatarURL() string {
	return o.d().AvatarURL
}

// Data returns a copy of the underlying organization data.
func (o *Organization) Data() OrganizationData {
	return *o.d()
}

// Key returns the login, which identifies the organization.
func (o *Organization) Key() string {
	return o.Login()
}

// Equal reports whether o and other are the same organization.
func (o *Organization) Equal(other *Organization) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Key() == other.Key()
}

// String returns the login.
func (o *Organization) String() string {
	return o.Login()
}

// Repositories lists the organization's repositories as summaries.
func (o *Organization) Repositories(ctx context.Context, opts ...ListOption) ([]*Repository, error) {
	if o == nil || o.client == nil || o.data == nil {
		return nil, newNotWiredError("organization", "Repositories")
	}
	return o.client.ListOrganizationRepositories(ctx, o.Login(), opts...)
}
