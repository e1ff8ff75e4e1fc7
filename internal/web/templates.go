package web

const pageTemplates = `
{{define "header"}}<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}} · TaskManager</title>
    <link rel="stylesheet" href="/static/app.css" />
  </head>
  <body class="theme-{{.Theme}}">
    <nav class="nav">
      <span class="brand">TaskManager</span>
      <a href="/">Home</a>
      <a href="/tasks">Tasks</a>
      <form method="post" action="/theme/toggle" class="inline">
        <input type="hidden" name="return" value="{{.ReturnTo}}" />
        <button type="submit" class="themeToggle">{{.ToggleTxt}}</button>
      </form>
    </nav>
    <main class="container">
{{end}}

{{define "footer"}}
    </main>
  </body>
</html>
{{end}}

{{define "home"}}{{template "header" .}}
      <section class="panel">
        <h1>Welcome to TaskManager</h1>
        <p class="muted">A task viewer for the demo todo API</p>
        <h2>Features:</h2>
        <ul class="features">
          <li>View and manage your tasks</li>
          <li>Search tasks by title</li>
          <li>Pagination for easy navigation</li>
          <li>Light/Dark mode toggle</li>
        </ul>
        <a class="button" href="/tasks">Get Started</a>
      </section>
{{template "footer" .}}{{end}}

{{define "list"}}{{template "header" .}}
      <h1>Task List</h1>
      <form method="get" action="/tasks" class="search">
        <input type="text" name="q" value="{{.Search}}" placeholder="Search tasks by title..." />
      </form>
      <ul class="tasks">
        {{range .Page.Items}}
        <li class="task{{if .Completed}} done{{end}}">
          <a href="/tasks/{{.ID}}">
            <span class="taskTitle">{{.Title}}</span>
            <span class="muted">Task ID: {{.ID}}</span>
          </a>
          {{if .Completed}}<span class="badge">Done</span>{{end}}
        </li>
        {{end}}
      </ul>
      {{if .Page.IsEmpty}}<p class="empty">No tasks found matching your search.</p>{{end}}
      {{if .ShowPager}}
      <div class="pager">
        {{if .PrevDisabled}}<span class="button disabled">Previous</span>{{else}}<a class="button" href="{{.PreviousURL}}">Previous</a>{{end}}
        {{range .Links}}{{if .Ellipsis}}<span class="ellipsis">…</span>{{else if .Current}}<span class="pageNumber current">{{.Number}}</span>{{else}}<a class="pageNumber" href="{{.URL}}">{{.Number}}</a>{{end}}{{end}}
        <span class="muted">Page {{.Page.Number}} of {{.Page.TotalPages}}</span>
        {{if .NextDisabled}}<span class="button disabled">Next</span>{{else}}<a class="button" href="{{.NextURL}}">Next</a>{{end}}
      </div>
      {{end}}
{{template "footer" .}}{{end}}

{{define "detail"}}{{template "header" .}}
      <a class="button" href="/tasks">← Back to Tasks</a>
      <section class="panel">
        <h1>Task Details</h1>
        {{if .Task.Completed}}<span class="badge">✓ Completed</span>{{end}}
        <dl>
          <dt>Task ID</dt><dd class="taskID">{{.Task.ID}}</dd>
          <dt>Title</dt><dd>{{.Task.Title}}</dd>
          <dt>User ID</dt><dd>{{.Task.UserID}}</dd>
          <dt>Status</dt><dd class="status {{if .Task.Completed}}completed{{else}}pending{{end}}">{{.Task.Status}}</dd>
        </dl>
        <form method="post" action="/tasks/{{.Task.ID}}/toggle">
          <input type="hidden" name="return" value="{{.ReturnTo}}" />
          <button type="submit" class="button">{{if .Task.Completed}}Mark In Progress{{else}}Mark Completed{{end}}</button>
        </form>
      </section>
{{template "footer" .}}{{end}}

{{define "notfound"}}{{template "header" .}}
      <section class="panel center">
        <h1 class="big">404</h1>
        <h2>Page Not Found</h2>
        <p class="muted">The page you're looking for doesn't exist.</p>
        <a class="button" href="/">Go Home</a>
      </section>
{{template "footer" .}}{{end}}

{{define "error"}}{{template "header" .}}
      <div class="errorBanner">
        <p>Error: {{.Message}}</p>
      </div>
{{template "footer" .}}{{end}}
`

const appCSS = `
body { margin: 0; font-family: system-ui, sans-serif; }
body.theme-light { background: #f9fafb; color: #111827; }
body.theme-dark { background: #111827; color: #ffffff; }
.nav { display: flex; gap: 1.5rem; align-items: center; padding: 1rem; }
.theme-light .nav { background: #2563eb; }
.theme-dark .nav { background: #1f2937; }
.nav a, .nav .brand { color: #ffffff; text-decoration: none; }
.brand { font-weight: bold; font-size: 1.5rem; margin-right: auto; }
.inline { display: inline; }
.container { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.panel { border-radius: 0.75rem; padding: 2rem; }
.theme-light .panel, .theme-light .task { background: #ffffff; }
.theme-dark .panel, .theme-dark .task { background: #1f2937; }
.center { text-align: center; }
.big { font-size: 6rem; color: #2563eb; margin: 0; }
.muted { color: #6b7280; }
.theme-dark .muted { color: #9ca3af; }
.search input { width: 100%; padding: 0.75rem; border-radius: 0.5rem; border: 2px solid #d1d5db; }
.tasks { list-style: none; padding: 0; display: grid; gap: 1rem; }
.task { display: flex; justify-content: space-between; padding: 1.5rem; border-left: 4px solid #d1d5db; border-radius: 0.5rem; }
.task.done { border-left-color: #22c55e; }
.task a { color: inherit; text-decoration: none; display: flex; flex-direction: column; }
.taskTitle { font-size: 1.25rem; font-weight: 600; }
.badge { background: #22c55e; color: #ffffff; padding: 0.25rem 0.75rem; border-radius: 9999px; font-weight: 600; }
.button { background: #2563eb; color: #ffffff; padding: 0.5rem 1rem; border-radius: 0.5rem; border: 0; text-decoration: none; }
.button.disabled { background: #d1d5db; color: #111827; cursor: not-allowed; }
.pager { display: flex; justify-content: center; align-items: center; gap: 0.5rem; margin-top: 2rem; }
.pageNumber { padding: 0.25rem 0.5rem; color: inherit; }
.pageNumber.current { font-weight: bold; text-decoration: underline; }
.status.completed { color: #22c55e; }
.status.pending { color: #eab308; }
.empty { text-align: center; color: #6b7280; margin-top: 2rem; }
.errorBanner { background: #fee2e2; color: #b91c1c; padding: 1rem; border-radius: 0.5rem; font-weight: 600; }
`
