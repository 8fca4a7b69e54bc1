// Package ui is the pacer terminal dashboard, built on Bubble Tea.
//
// # Pages
//
// Two pages share one layout (header, content, key help footer):
//
//   - Diary: the records of one day, month or year. Fields carrying a write
//     key are editable in place; every keystroke in the editor is validated
//     and written through a field.Field.
//   - Statistics: the statistics components in a scrollable viewport.
//
// Each page owns a remote.Controller. Reloading a page bumps its read
// counter, resets its data to unknown and returns the fetch command; the
// settled response comes back as a remote.LoadedMsg and runs through the
// response pipeline inside Update. Nothing outside Update mutates state.
//
// # Routing
//
// Router is the remote.Navigator of every controller. An auth failure
// moves it to the login route, which the model shows as a token dialog.
// Saving a token returns to the rejected page and reloads it.
//
// # Dialogs
//
// Modal dialogs (page errors, login) take every key while open. The help
// overlay closes on any key.
//
// # Theming
//
// Themes are defined in theme.go. T cycles them and the choice is saved
// to the preferences file together with the active page.
package ui
