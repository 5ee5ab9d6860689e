package server

// editorPage is the embedded live-preview UI. It talks to /api/render on
// every edit and operates only on the returned HTML string.
const editorPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>prose</title>
<style>
body { margin: 0; font-family: sans-serif; display: flex; flex-direction: column; height: 100vh; }
header { padding: 0.5rem 1rem; border-bottom: 1px solid #ddd; display: flex; gap: 0.5rem; align-items: center; }
header h1 { font-size: 1rem; margin: 0 1rem 0 0; }
main { flex: 1; display: flex; min-height: 0; }
textarea, #preview, #raw { flex: 1; padding: 1rem; overflow: auto; border: none; font-size: 0.95rem; }
textarea { resize: none; outline: none; border-right: 1px solid #ddd; font-family: monospace; }
#raw { display: none; font-family: monospace; white-space: pre-wrap; margin: 0; }
</style>
</head>
<body>
<header>
<h1>prose</h1>
<button id="sample">Sample</button>
<button id="clear">Clear</button>
<button id="toggle">Show raw HTML</button>
</header>
<main>
<textarea id="editor" spellcheck="false"></textarea>
<div id="preview"></div>
<pre id="raw"></pre>
</main>
<script>
const editor = document.getElementById('editor');
const preview = document.getElementById('preview');
const raw = document.getElementById('raw');
const toggle = document.getElementById('toggle');
let showRaw = false;

async function render() {
  const res = await fetch('/api/render', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({source: editor.value}),
  });
  const out = await res.json();
  preview.innerHTML = out.html;
  raw.textContent = out.html;
}

editor.addEventListener('input', render);

document.getElementById('sample').addEventListener('click', async () => {
  const res = await fetch('/api/sample');
  editor.value = await res.text();
  render();
});

document.getElementById('clear').addEventListener('click', () => {
  editor.value = '';
  render();
});

toggle.addEventListener('click', () => {
  showRaw = !showRaw;
  preview.style.display = showRaw ? 'none' : 'block';
  raw.style.display = showRaw ? 'block' : 'none';
  toggle.textContent = showRaw ? 'Show rendered' : 'Show raw HTML';
});

render();
</script>
</body>
</html>
`
