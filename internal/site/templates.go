package site

// presentationTemplate is the Go html/template for the presentation page.
const presentationTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <main class="deck" id="deck" data-swipe-threshold="{{.SwipeThreshold}}">
{{- range .Slides}}
    <section class="slide" data-slide="{{.Number}}"{{if .Hidden}} data-hidden="true"{{end}}>
{{- range .Shapes}}
      <div class="shape{{if .IsTitle}} title{{end}}" style="{{.Style}}"{{if .Animated}} data-anim data-anim-delay="{{.AnimDelay}}" data-anim-duration="{{.AnimDuration}}"{{end}}>
{{- if .IsPicture}}
        <img src="{{.ImageSrc}}" alt="">
{{- else}}
{{- range .Paragraphs}}
        <p class="{{.Class}}"{{if .Style}} style="{{.Style}}"{{end}}>{{.Text}}</p>
{{- end}}
{{- end}}
      </div>
{{- end}}
{{- if .NotesHTML}}
      <aside class="notes">{{.NotesHTML}}</aside>
{{- end}}
    </section>
{{- end}}
  </main>
  <div class="progress"><div id="progress-fill"></div></div>
  <footer class="controls">
    <button id="prev-btn" aria-label="Previous slide">&#8249;</button>
    <span class="counter"><span id="current-slide">1</span> / <span id="total-slides">1</span></span>
    <button id="next-btn" aria-label="Next slide">&#8250;</button>
{{- if .HasHidden}}
    <label class="hidden-toggle"><input type="checkbox" id="show-hidden"> show hidden slides</label>
{{- end}}
  </footer>
  <script src="script.js"></script>
</body>
</html>`

// cssContent is the full stylesheet for generated presentations.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --slide-bg: #ffffff;
  --text: #212529;
  --text-muted: #868e96;
  --chrome-bg: #f1f3f5;
  --chrome-border: #dee2e6;
  --accent: #228be6;
  --notes-bg: #fff9db;
  --notes-border: #ffe066;
}

[data-theme="dark"] {
  --bg: #141517;
  --slide-bg: #1a1b1e;
  --text: #e9ecef;
  --text-muted: #868e96;
  --chrome-bg: #202225;
  --chrome-border: #343a40;
  --accent: #4dabf7;
  --notes-bg: #2b2a1d;
  --notes-border: #5c5425;
}

* { margin: 0; padding: 0; box-sizing: border-box; }

html, body {
  height: 100%;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  overflow: hidden;
}

/* ============ Deck & slides ============ */
.deck {
  position: absolute;
  inset: 0 0 3.5rem 0;
}

.slide {
  display: none;
  position: absolute;
  inset: 0;
  background: var(--slide-bg);
  overflow: hidden;
}

.slide.active { display: block; }

.shape {
  position: absolute;
  overflow: hidden;
}

.shape img {
  width: 100%;
  height: 100%;
  object-fit: contain;
}

.shape.title p {
  font-size: 2.2em;
  font-weight: 600;
}

.para { line-height: 1.35; }
.para.lvl-1 { padding-left: 1.5em; }
.para.lvl-2 { padding-left: 3em; }
.para.lvl-3 { padding-left: 4.5em; }
.para.lvl-4 { padding-left: 6em; }
.para.align-center { text-align: center; }
.para.align-right { text-align: right; }
.para.align-justify { text-align: justify; }

/* ============ Entrance animations ============ */
[data-anim] {
  opacity: 0;
  transform: translateY(14px);
  transition-property: opacity, transform;
  transition-timing-function: ease-out;
}

[data-anim].anim-play {
  opacity: 1;
  transform: none;
}

/* ============ Speaker notes ============ */
.notes {
  display: none;
  position: absolute;
  left: 2%;
  right: 2%;
  bottom: 2%;
  max-height: 30%;
  overflow-y: auto;
  padding: 0.75rem 1rem;
  font-size: 0.85rem;
  background: var(--notes-bg);
  border: 1px solid var(--notes-border);
  border-radius: 6px;
}

.slide.active .notes { display: block; }

/* ============ Chrome ============ */
.controls {
  position: absolute;
  left: 0;
  right: 0;
  bottom: 0;
  height: 3.5rem;
  display: flex;
  align-items: center;
  justify-content: center;
  gap: 1rem;
  background: var(--chrome-bg);
  border-top: 1px solid var(--chrome-border);
}

.controls button {
  width: 2.25rem;
  height: 2.25rem;
  font-size: 1.4rem;
  line-height: 1;
  color: var(--text);
  background: transparent;
  border: 1px solid var(--chrome-border);
  border-radius: 6px;
  cursor: pointer;
}

.controls button:hover:not(:disabled) { border-color: var(--accent); color: var(--accent); }
.controls button:disabled { opacity: 0.35; cursor: default; }

.counter {
  min-width: 5rem;
  text-align: center;
  font-variant-numeric: tabular-nums;
  color: var(--text-muted);
}

.hidden-toggle {
  display: flex;
  align-items: center;
  gap: 0.35rem;
  font-size: 0.85rem;
  color: var(--text-muted);
  cursor: pointer;
  user-select: none;
}

.progress {
  position: absolute;
  left: 0;
  right: 0;
  bottom: 3.5rem;
  height: 3px;
  background: var(--chrome-border);
}

#progress-fill {
  height: 100%;
  width: 0;
  background: var(--accent);
  transition: width 0.2s ease;
}
`

// jsContent is the standalone navigation controller: keyboard, buttons,
// touch swipe, hidden-slide toggle, progress, and entrance animation replay.
const jsContent = `(function() {
  "use strict";

  var slides = Array.prototype.slice.call(document.querySelectorAll(".slide"));
  var prevBtn = document.getElementById("prev-btn");
  var nextBtn = document.getElementById("next-btn");
  var currentEl = document.getElementById("current-slide");
  var totalEl = document.getElementById("total-slides");
  var progressFill = document.getElementById("progress-fill");
  var hiddenToggle = document.getElementById("show-hidden");
  var deck = document.getElementById("deck");
  var threshold = parseFloat(deck.getAttribute("data-swipe-threshold")) || 50;

  var current = 1;
  var showHidden = false;

  function visibleSlides() {
    return slides.filter(function(slide) {
      return showHidden || slide.getAttribute("data-hidden") !== "true";
    });
  }

  function render() {
    // Deactivate everything and wipe animation state so reactivation
    // replays from scratch.
    slides.forEach(function(slide) {
      slide.classList.remove("active");
      slide.querySelectorAll("[data-anim]").forEach(function(el) {
        el.classList.remove("anim-play");
        el.style.transitionDelay = "";
        el.style.transitionDuration = "";
      });
    });

    var visible = visibleSlides();
    if (visible.length === 0) return;
    if (current < 1) current = 1;
    if (current > visible.length) current = visible.length;

    var active = visible[current - 1];
    active.classList.add("active");

    var animated = active.querySelectorAll("[data-anim]");
    if (animated.length > 0) {
      // Forced reflow: the cleared state must be committed before the play
      // class is reapplied, or the transition never fires.
      void active.offsetWidth;
      animated.forEach(function(el) {
        var delay = parseFloat(el.getAttribute("data-anim-delay")) || 0;
        var duration = parseFloat(el.getAttribute("data-anim-duration")) || 0.5;
        el.style.transitionDelay = delay + "s";
        el.style.transitionDuration = duration + "s";
        el.classList.add("anim-play");
      });
    }

    currentEl.textContent = current;
    totalEl.textContent = visible.length;
    progressFill.style.width = (current / visible.length * 100) + "%";
    prevBtn.disabled = current === 1;
    nextBtn.disabled = current === visible.length;
  }

  function advance() {
    if (current < visibleSlides().length) { current++; render(); }
  }

  function retreat() {
    if (current > 1) { current--; render(); }
  }

  function jumpTo(n) {
    var count = visibleSlides().length;
    if (n >= 1 && n <= count) { current = n; render(); }
  }

  function setShowHidden(flag) {
    var visible = visibleSlides();
    var prevActive = visible.length > 0 ? visible[current - 1] : null;
    showHidden = flag;
    current = 1;
    if (prevActive) {
      var next = visibleSlides();
      for (var i = 0; i < next.length; i++) {
        if (next[i] === prevActive) { current = i + 1; break; }
      }
    }
    render();
  }

  document.addEventListener("keydown", function(e) {
    switch (e.key) {
      case "ArrowLeft":
      case "ArrowUp":
        retreat();
        break;
      case "ArrowRight":
      case "ArrowDown":
        advance();
        break;
      case " ":
        e.preventDefault();
        advance();
        break;
      case "Home":
        jumpTo(1);
        break;
      case "End":
        jumpTo(visibleSlides().length);
        break;
    }
  });

  prevBtn.addEventListener("click", retreat);
  nextBtn.addEventListener("click", advance);

  var touchStartX = null;
  document.addEventListener("touchstart", function(e) {
    touchStartX = e.touches[0].clientX;
  });
  document.addEventListener("touchend", function(e) {
    if (touchStartX === null) return;
    var delta = touchStartX - e.changedTouches[0].clientX;
    if (delta > threshold) advance();
    else if (-delta > threshold) retreat();
    touchStartX = null;
  });

  if (hiddenToggle) {
    hiddenToggle.addEventListener("change", function() {
      setShowHidden(this.checked);
    });
  }

  render();
})();
`

// liveJSContent is the websocket client for present mode: input events are
// relayed to the server-side controller and render operations come back as
// JSON messages, so every connected browser mirrors the presenter.
const liveJSContent = `(function() {
  "use strict";

  var slides = {};
  Array.prototype.slice.call(document.querySelectorAll(".slide")).forEach(function(slide) {
    slides[slide.getAttribute("data-slide")] = slide;
  });
  var prevBtn = document.getElementById("prev-btn");
  var nextBtn = document.getElementById("next-btn");
  var currentEl = document.getElementById("current-slide");
  var totalEl = document.getElementById("total-slides");
  var progressFill = document.getElementById("progress-fill");
  var hiddenToggle = document.getElementById("show-hidden");
  var deck = document.getElementById("deck");

  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");

  function send(cmd) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(cmd));
  }

  function shapeAt(slide, index) {
    var els = slide.querySelectorAll("[data-anim]");
    return index < els.length ? els[index] : null;
  }

  function apply(op) {
    var slide = slides[op.slide];
    switch (op.op) {
      case "active":
        if (slide) slide.classList.toggle("active", op.on);
        break;
      case "counter":
        currentEl.textContent = op.current;
        totalEl.textContent = op.total;
        break;
      case "progress":
        progressFill.style.width = (op.fraction * 100) + "%";
        break;
      case "control":
        var btn = op.control === "prev" ? prevBtn : nextBtn;
        btn.disabled = !op.on;
        break;
      case "reset":
        var el = shapeAt(slide, op.shape);
        if (el) {
          el.classList.remove("anim-play");
          el.style.transitionDelay = "";
          el.style.transitionDuration = "";
        }
        break;
      case "flush":
        // Commit pending style changes before any replay that follows.
        void deck.offsetWidth;
        break;
      case "start":
        var shape = shapeAt(slide, op.shape);
        if (shape) {
          shape.style.transitionDelay = op.delay + "s";
          shape.style.transitionDuration = op.duration + "s";
          shape.classList.add("anim-play");
        }
        break;
    }
  }

  ws.onmessage = function(event) {
    var msg = JSON.parse(event.data);
    (msg.ops || [msg]).forEach(apply);
  };

  document.addEventListener("keydown", function(e) {
    var keys = ["ArrowLeft", "ArrowRight", "ArrowUp", "ArrowDown", " ", "Home", "End"];
    if (keys.indexOf(e.key) === -1) return;
    if (e.key === " ") e.preventDefault();
    send({ cmd: "key", key: e.key });
  });

  prevBtn.addEventListener("click", function() { send({ cmd: "retreat" }); });
  nextBtn.addEventListener("click", function() { send({ cmd: "advance" }); });

  var touchStartX = null;
  document.addEventListener("touchstart", function(e) {
    touchStartX = e.touches[0].clientX;
  });
  document.addEventListener("touchend", function(e) {
    if (touchStartX === null) return;
    send({ cmd: "swipe", startX: touchStartX, endX: e.changedTouches[0].clientX });
    touchStartX = null;
  });

  if (hiddenToggle) {
    hiddenToggle.addEventListener("change", function() {
      send({ cmd: "showHidden", on: this.checked });
    });
  }
})();
`
