package site

import (
	"bytes"
	"fmt"
	"html/template"
)

// pageData holds the data passed to the HTML template for each deck page.
type pageData struct {
	Title      string
	Theme      string
	DeckHTML   template.HTML
	SlideCount int
	BasePath   string
	Edit       bool
}

// indexData holds the data for the landing page.
type indexData struct {
	Theme string
	Decks []deckEntry
}

// RenderPage renders a full viewer page around pre-rendered deck HTML.
// The live server uses this to serve the same page the static build
// writes, with the edit wiring flag added.
func RenderPage(title, theme, deckHTML string, slideCount int, edit bool) (string, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing page template: %w", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, pageData{
		Title:      title,
		Theme:      theme,
		DeckHTML:   template.HTML(deckHTML),
		SlideCount: slideCount,
		Edit:       edit,
	})
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return buf.String(), nil
}

// CSS returns the stylesheet served by the live server.
func CSS() string { return cssContent }

// JS returns the viewer script served by the live server.
func JS() string { return jsContent }

// ErrorPage renders the terminal page shown when the deck document could
// not be loaded. It deliberately carries no viewer script: navigation and
// edit wiring are never installed in this state.
func ErrorPage(theme, deckHTML string) (string, error) {
	tmpl, err := template.New("error").Parse(errorTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing error template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pageData{Title: "Deck unavailable", Theme: theme, DeckHTML: template.HTML(deckHTML)}); err != nil {
		return "", fmt.Errorf("rendering error page: %w", err)
	}
	return buf.String(), nil
}

// errorTemplate is the terminal load-failure page.
const errorTemplate = `<!DOCTYPE html>
<html lang="en"{{if .Theme}} data-theme="{{.Theme}}"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <main class="deck">
    {{.DeckHTML}}
  </main>
</body>
</html>`

// pageTemplate is the Go html/template for each deck page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en"{{if .Theme}} data-theme="{{.Theme}}"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body{{if .Edit}} data-edit="true"{{end}}>
  <main class="deck" id="deck" data-slide-count="{{.SlideCount}}">
    {{.DeckHTML}}
  </main>
  <nav class="deck-dots" id="deck-dots" aria-hidden="true"></nav>
  <script src="{{.BasePath}}viewer.js"></script>
</body>
</html>`

// indexTemplate is the landing page listing every generated deck.
const indexTemplate = `<!DOCTYPE html>
<html lang="en"{{if .Theme}} data-theme="{{.Theme}}"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Presentations</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <main class="deck-index">
    <h1>Presentations</h1>
    <ul class="deck-list">
      {{range .Decks}}<li><a href="{{.Href}}">{{.Title}}</a><span class="deck-count">{{.Count}} slides</span></li>
      {{end}}
    </ul>
  </main>
</body>
</html>`

// cssContent is the stylesheet shared by all deck pages.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1a1a2e;
  --muted: #6b7280;
  --accent: #4f46e5;
  --surface: #f4f4f8;
}
[data-theme="dark"] {
  --bg: #111118;
  --fg: #f1f1f4;
  --muted: #9ca3af;
  --accent: #818cf8;
  --surface: #1d1d2b;
}
[data-theme="midnight"] {
  --bg: #060613;
  --fg: #e6e9ff;
  --muted: #7c82ad;
  --accent: #38bdf8;
  --surface: #101027;
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--fg);
}

.deck { width: 100%; }
.slide {
  position: relative;
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  justify-content: center;
  padding: 4rem clamp(2rem, 10vw, 10rem);
  overflow: hidden;
  border-bottom: 1px solid var(--surface);
}
.slide[data-theme="dark"], .slide[data-theme="midnight"] {
  background: var(--surface);
}

.slide-background {
  position: absolute;
  inset: 0;
  width: 100%;
  height: 100%;
  object-fit: cover;
  z-index: 0;
  opacity: 0.35;
}
.hero-inner { position: relative; z-index: 1; }
.badge {
  display: inline-block;
  padding: 0.25rem 0.75rem;
  border-radius: 999px;
  background: var(--accent);
  color: #fff;
  font-size: 0.8rem;
  letter-spacing: 0.05em;
  text-transform: uppercase;
}
.hero-title { font-size: clamp(2.5rem, 6vw, 4.5rem); margin: 0.5rem 0; }
.hero-subtitle { font-size: 1.4rem; color: var(--muted); margin: 0; }

.slide-title { font-size: clamp(1.8rem, 4vw, 3rem); margin: 0 0 0.5rem; }
.slide-subtitle { color: var(--muted); font-size: 1.2rem; margin: 0 0 1.5rem; }
.points { font-size: 1.3rem; line-height: 2; padding-left: 1.4rem; }
.slide-media { max-width: 100%; border-radius: 12px; margin-top: 2rem; }

.stats-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
  gap: 2rem;
  margin-top: 2rem;
}
.stats-grid[data-columns="2"] { grid-template-columns: repeat(2, 1fr); }
.stats-grid[data-columns="3"] { grid-template-columns: repeat(3, 1fr); }
.stats-grid[data-columns="4"] { grid-template-columns: repeat(4, 1fr); }
.stat { background: var(--surface); border-radius: 12px; padding: 1.5rem; }
.stat-value { font-size: 2.6rem; font-weight: 700; color: var(--accent); }
.stat-label { font-size: 1rem; margin-top: 0.25rem; }
.stat-caption { font-size: 0.85rem; color: var(--muted); margin-top: 0.25rem; }

.agenda { list-style: none; padding: 0; margin: 2rem 0 0; }
.agenda-item {
  display: flex;
  gap: 1.25rem;
  align-items: baseline;
  padding: 1rem 0;
  border-bottom: 1px solid var(--surface);
}
.agenda-number { font-size: 1.4rem; font-weight: 700; color: var(--accent); }
.agenda-title { font-size: 1.3rem; margin: 0; }
.agenda-description { color: var(--muted); margin: 0.25rem 0 0; }

.slide-notes {
  margin-top: 3rem;
  padding: 1rem 1.25rem;
  background: var(--surface);
  border-left: 3px solid var(--accent);
  border-radius: 0 8px 8px 0;
  font-size: 0.95rem;
}
.notes-label {
  display: block;
  font-size: 0.75rem;
  font-weight: 700;
  letter-spacing: 0.08em;
  text-transform: uppercase;
  color: var(--muted);
  margin-bottom: 0.4rem;
}

.slide-placeholder, .slide-error { align-items: center; text-align: center; }
.placeholder-message, .error-message { color: var(--muted); font-size: 1.3rem; }

.deck-dots {
  position: fixed;
  right: 1.5rem;
  top: 50%;
  transform: translateY(-50%);
  display: flex;
  flex-direction: column;
  gap: 0.6rem;
  z-index: 10;
}
.deck-dot {
  width: 10px;
  height: 10px;
  border-radius: 50%;
  border: none;
  padding: 0;
  background: var(--muted);
  opacity: 0.4;
  cursor: pointer;
  transition: opacity 0.2s, transform 0.2s;
}
.deck-dot.active { background: var(--accent); opacity: 1; transform: scale(1.3); }

body[data-edit] [data-field] { outline: 1px dashed transparent; }
body[data-edit] [data-field]:hover { outline-color: var(--muted); }
body[data-edit] [data-field]:focus { outline: 2px solid var(--accent); border-radius: 4px; }

.deck-index { max-width: 720px; margin: 10vh auto; padding: 0 2rem; }
.deck-list { list-style: none; padding: 0; }
.deck-list li {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
  padding: 1rem 0;
  border-bottom: 1px solid var(--surface);
}
.deck-list a { color: var(--accent); text-decoration: none; font-size: 1.2rem; }
.deck-count { color: var(--muted); font-size: 0.9rem; }
`

// jsContent is the viewer script: scroll tracking, keyboard navigation,
// the dot indicator and, when the page carries data-edit, the
// contenteditable wiring and WebSocket commit channel.
const jsContent = `(function () {
  'use strict';

  var deckEl = document.getElementById('deck');
  if (!deckEl) return;
  var slides = Array.prototype.slice.call(deckEl.querySelectorAll('.slide'));
  if (slides.length === 0) return;

  var dotsEl = document.getElementById('deck-dots');
  var editMode = document.body.hasAttribute('data-edit');
  var ws = null;

  // Trailing-edge-drop throttle: calls inside the window are discarded,
  // not deferred.
  function throttle(fn, windowMs) {
    var last = 0;
    return function () {
      var now = Date.now();
      if (now - last < windowMs) return;
      last = now;
      fn.apply(null, arguments);
    };
  }

  function slideRects() {
    return slides.map(function (el) {
      var rect = el.getBoundingClientRect();
      return { top: rect.top, height: rect.height };
    });
  }

  // Nearest-center scan; first minimum wins on ties.
  function computeActive() {
    var scrollTop = window.scrollY;
    var viewportCenter = scrollTop + window.innerHeight / 2;
    var rects = slideRects();
    var active = 0;
    var best = Infinity;
    for (var i = 0; i < rects.length; i++) {
      var center = rects[i].top + scrollTop + rects[i].height / 2;
      var d = Math.abs(center - viewportCenter);
      if (d < best) { best = d; active = i; }
    }
    return active;
  }

  var dots = [];
  function buildDots() {
    if (!dotsEl) return;
    slides.forEach(function (_, i) {
      var dot = document.createElement('button');
      dot.className = 'deck-dot';
      dot.addEventListener('click', function () {
        setActive(i);
        scrollToSlide(i);
        if (ws && ws.readyState === WebSocket.OPEN) {
          ws.send(JSON.stringify({ type: 'jump', index: i }));
        }
      });
      dotsEl.appendChild(dot);
      dots.push(dot);
    });
  }

  function setActive(index) {
    dots.forEach(function (dot, i) {
      dot.classList.toggle('active', i === index);
    });
  }

  function scrollToSlide(index) {
    var target = slides[index];
    if (target) target.scrollIntoView({ behavior: 'smooth', block: 'start' });
  }

  var onScroll = throttle(function () {
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({
        type: 'scroll',
        scroll_top: window.scrollY,
        client_height: window.innerHeight,
        slides: slideRects()
      }));
      return;
    }
    setActive(computeActive());
  }, 150);

  window.addEventListener('scroll', onScroll);

  window.addEventListener('keydown', function (e) {
    if (editMode && document.activeElement &&
        document.activeElement.hasAttribute('contenteditable')) return;
    var handled = ['ArrowDown', 'ArrowUp', 'PageDown', 'PageUp'];
    if (handled.indexOf(e.key) === -1) return;
    e.preventDefault();
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({ type: 'key', key: e.key }));
      return;
    }
    var from = computeActive();
    var target = (e.key === 'ArrowDown' || e.key === 'PageDown')
      ? Math.min(from + 1, slides.length - 1)
      : Math.max(from - 1, 0);
    setActive(target);
    scrollToSlide(target);
  });

  function slideIndexOf(el) {
    var section = el.closest('.slide');
    return section ? parseInt(section.getAttribute('data-slide-index'), 10) : 0;
  }

  function wireEditing() {
    var fields = deckEl.querySelectorAll('[data-field]');
    fields.forEach(function (el) {
      el.setAttribute('contenteditable', 'true');
      var path = el.getAttribute('data-field');
      el.addEventListener('blur', function () {
        send({ type: 'commit', slide: slideIndexOf(el), path: path, value: el.textContent.trim() });
      });
      if (path === 'notes') {
        el.addEventListener('input', function () {
          var block = el.closest('.slide-notes') || el;
          send({ type: 'input', slide: slideIndexOf(el), path: path, text: block.textContent });
        });
      }
    });
  }

  function send(msg) {
    if (ws && ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + location.host + '/ws');
    ws.addEventListener('message', function (e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }
      if (msg.type === 'active') setActive(msg.index);
      if (msg.type === 'scroll_to') { setActive(msg.index); scrollToSlide(msg.index); }
    });
  }

  buildDots();
  setActive(0);
  if (editMode) {
    connect();
    wireEditing();
  }
})();
`
