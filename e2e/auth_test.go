//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterAndLogin(t *testing.T) {
	page := newPage(t)
	u := registerUser(t, page, "Alice")
	assert.Contains(t, textOf(t, page.Locator(".msg-success")), "Thanks for registering")

	loginUser(t, page, u)
	assert.Contains(t, textOf(t, page.Locator(".topbar .who")), "Hello, Alice")

	title, err := page.Title()
	require.NoError(t, err)
	assert.Equal(t, "Dashboard - Job Board", title)
}

func TestAuth_RegisterValidationKeepsValues(t *testing.T) {
	page := newPage(t)
	_, err := page.Goto(baseURL + "/")
	require.NoError(t, err)

	email := uniqueEmail("bad")
	form := page.Locator("[data-testid='register-form']")
	require.NoError(t, form.Locator("input[name='first_name']").Fill("A"))
	require.NoError(t, form.Locator("input[name='last_name']").Fill("Tester"))
	require.NoError(t, form.Locator("input[name='email']").Fill(email))
	require.NoError(t, form.Locator("input[name='password']").Fill("short"))
	require.NoError(t, form.Locator("input[name='confirm_password']").Fill("other"))
	require.NoError(t, form.Locator("button[type='submit']").Click())

	waitVisible(t, page.Locator(".msg-error"))
	count, err := page.Locator(".msg-error").Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count, "first name, password length and mismatch errors")

	value, err := form.Locator("input[name='last_name']").InputValue()
	require.NoError(t, err)
	assert.Equal(t, "Tester", value)
	value, err = form.Locator("input[name='email']").InputValue()
	require.NoError(t, err)
	assert.Equal(t, email, value)
	value, err = form.Locator("input[name='password']").InputValue()
	require.NoError(t, err)
	assert.Empty(t, value, "password never repopulated")
}

func TestAuth_DuplicateEmail(t *testing.T) {
	page := newPage(t)
	u := registerUser(t, page, "Dora")

	form := page.Locator("[data-testid='register-form']")
	require.NoError(t, form.Locator("input[name='first_name']").Fill("Dora"))
	require.NoError(t, form.Locator("input[name='last_name']").Fill("Again"))
	require.NoError(t, form.Locator("input[name='email']").Fill(u.email))
	require.NoError(t, form.Locator("input[name='password']").Fill(testPassword))
	require.NoError(t, form.Locator("input[name='confirm_password']").Fill(testPassword))
	require.NoError(t, form.Locator("button[type='submit']").Click())

	waitVisible(t, page.Locator(".msg-error"))
	assert.Contains(t, textOf(t, page.Locator(".msg-error")), "Email already exists")
}

func TestAuth_LoginFailures(t *testing.T) {
	page := newPage(t)
	u := registerUser(t, page, "Eve")

	form := page.Locator("[data-testid='login-form']")
	require.NoError(t, form.Locator("input[name='email']").Fill(u.email))
	require.NoError(t, form.Locator("input[name='password']").Fill("wrong-password"))
	require.NoError(t, form.Locator("button[type='submit']").Click())
	waitVisible(t, page.Locator(".msg-error"))
	assert.Contains(t, textOf(t, page.Locator(".msg-error")), "Email and password do not match")

	require.NoError(t, form.Locator("input[name='email']").Fill(uniqueEmail("nobody")))
	require.NoError(t, form.Locator("input[name='password']").Fill(testPassword))
	require.NoError(t, form.Locator("button[type='submit']").Click())
	waitVisible(t, page.Locator(".msg-error"))
	assert.Contains(t, textOf(t, page.Locator(".msg-error")), "Email does not exist")
}

func TestAuth_Logout(t *testing.T) {
	page, _ := newLoggedInUser(t, "Finn")

	require.NoError(t, page.Locator("[data-testid='logout']").Click())
	require.NoError(t, page.WaitForURL(baseURL+"/"))

	visible, err := page.Locator("[data-testid='login-form']").IsVisible()
	require.NoError(t, err)
	assert.True(t, visible, "login form should be visible after logout")

	// dashboard is not reachable anymore
	_, err = page.Goto(baseURL + "/dashboard")
	require.NoError(t, err)
	require.NoError(t, page.WaitForURL(baseURL+"/"))
	assert.Contains(t, textOf(t, page.Locator(".msg-info, .msg-error")), "Please log in to continue")
}
