package boilerplate

import (
	"fmt"
	"time"
)

// HTML generates a page skeleton with header, main and footer sections.
func HTML(filename string) string {
	title := titleWords(stem(filename))

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="description" content="%[1]s">
    <title>%[1]s</title>

    <link rel="stylesheet" href="styles.css">
    <link rel="icon" type="image/x-icon" href="favicon.ico">
</head>
<body>
    <header>
        <nav>
            <h1>%[1]s</h1>
            <!-- Navigation items -->
        </nav>
    </header>

    <main>
        <section class="hero">
            <h2>Welcome to %[1]s</h2>
            <p>This is a generated HTML template. Customize it according to your needs.</p>
        </section>

        <section class="content">
            <div class="container">
                <p>TODO: Add your content here</p>
            </div>
        </section>
    </main>

    <footer>
        <p>&copy; %[2]d %[1]s.</p>
    </footer>

    <script src="script.js"></script>
</body>
</html>
`, title, time.Now().Year())
}

// CSS generates a base stylesheet with reset, layout and responsive rules.
func CSS(filename string) string {
	return fmt.Sprintf(`/*
 * %s Stylesheet
 * Date: %s
 */

/* Reset and Base Styles */
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

html {
    font-size: 16px;
    scroll-behavior: smooth;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    line-height: 1.6;
    color: #333;
    background-color: #fff;
}

/* Layout */
.container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 0 20px;
}

/* Header */
header {
    background-color: #f8f9fa;
    padding: 1rem 0;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

nav h1 {
    color: #2c3e50;
    font-size: 2rem;
    font-weight: 600;
}

/* Main Content */
main {
    min-height: calc(100vh - 120px);
    padding: 2rem 0;
}

.hero {
    text-align: center;
    padding: 3rem 0;
    background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
    color: white;
    margin-bottom: 2rem;
}

.hero h2 {
    font-size: 2.5rem;
    margin-bottom: 1rem;
}

/* Footer */
footer {
    background-color: #2c3e50;
    color: white;
    text-align: center;
    padding: 1rem 0;
    margin-top: auto;
}

/* Utilities */
.text-center { text-align: center; }
.mt-1 { margin-top: 0.25rem; }
.mt-2 { margin-top: 0.5rem; }
.mb-1 { margin-bottom: 0.25rem; }
.mb-2 { margin-bottom: 0.5rem; }

/* Responsive Design */
@media (max-width: 768px) {
    .container {
        padding: 0 15px;
    }

    .hero h2 {
        font-size: 2rem;
    }

    nav h1 {
        font-size: 1.5rem;
    }
}

/* TODO: Add your custom styles here */
`, titleWords(stem(filename)), today())
}
