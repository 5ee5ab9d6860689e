package html_test

import (
	"fmt"
	"log"
	"os"

	"github.com/prosedown/prose/gen/html"
	"github.com/prosedown/prose/parser"
)

func ExampleGenerator_Run() {
	const src = "# Cooking with Gas\n- *stir* the pot\n- **plate** it\n"
	doc, err := parser.ParseString(src)
	if err != nil {
		log.Fatal(err)
	}
	g := html.Gen(doc)
	g.Stdout = os.Stdout
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
	// Output: <h1>Cooking with Gas</h1><ul><li><i>stir</i> the pot</li><li><b>plate</b> it</li></ul>
}

func ExampleGenerator_Output() {
	doc := parser.MustParse("```bash\necho hi\n```")
	out, err := html.Gen(doc).Output()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	// Output: <pre><code class="lang-bash">echo hi
	// </code></pre>
}
