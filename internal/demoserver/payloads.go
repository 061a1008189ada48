package demoserver

// previewFragment is what /api/preview returns in place of a rendered
// page. It is sanitized once when the server is built.
const previewFragment = `
<div style="padding: 20px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
    <div style="background: #f0f8ff; padding: 20px; border-radius: 12px; margin-bottom: 20px; border-left: 4px solid #007AFF;">
        <h3 style="margin: 0 0 10px 0; color: #007AFF;">🚀 Demo mode</h3>
        <p style="margin: 0; color: #666;">This is a demo interface. Install the full runtime to preview and scrape real pages.</p>
    </div>

    <h2 style="color: #333; border-bottom: 2px solid #eee; padding-bottom: 10px;">Sample page content</h2>

    <div style="background: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); margin: 20px 0;">
        <h3 style="color: #007AFF; margin-top: 0;">Sample product title</h3>
        <p style="color: #666; line-height: 1.6;">This is sample text. Click it to select it for scraping. With the full runtime this area shows the target page itself.</p>

        <div style="display: flex; gap: 20px; margin: 20px 0; align-items: center;">
            <img src="` + previewImage + `" alt="Sample image" style="border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);" />
            <div>
                <div style="font-size: 24px; font-weight: bold; color: #FF3B30; margin-bottom: 5px;">¥299.00</div>
                <div style="font-size: 14px; color: #999; text-decoration: line-through;">Was: ¥399.00</div>
            </div>
        </div>

        <a href="#" style="color: #007AFF; text-decoration: none; font-weight: 500;">View details →</a>
    </div>

    <div style="background: #f9f9f9; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <h4 style="margin: 0 0 10px 0; color: #333;">Product features</h4>
        <ul style="margin: 0; padding-left: 20px; color: #666;">
            <li>High quality materials</li>
            <li>Modern minimal design</li>
            <li>Several colours available</li>
            <li>Free nationwide shipping</li>
        </ul>
    </div>

    <div style="background: #fff3cd; border: 1px solid #ffeaa7; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <strong style="color: #856404;">💡 Tip:</strong>
        <p style="margin: 5px 0 0 0; color: #856404;">With the full runtime you can click any text, image or link on the page to choose what to scrape.</p>
    </div>
</div>
`

const (
	previewImage = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMTAwIiBoZWlnaHQ9IjEwMCIgdmlld0JveD0iMCAwIDEwMCAxMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+CjxyZWN0IHdpZHRoPSIxMDAiIGhlaWdodD0iMTAwIiByeD0iOCIgZmlsbD0iIzAwN0FGRiIvPgo8dGV4dCB4PSI1MCIgeT0iNTUiIGZvbnQtZmFtaWx5PSJBcmlhbCIgZm9udC1zaXplPSIxNCIgZmlsbD0id2hpdGUiIHRleHQtYW5jaG9yPSJtaWRkbGUiPuekuuS+i+WbvueJhzwvdGV4dD4KPC9zdmc+"

	blueThumb  = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNTAiIGhlaWdodD0iNTAiIHZpZXdCb3g9IjAgMCA1MCA1MCIgZmlsbD0ibm9uZSIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj4KPHJlY3Qgd2lkdGg9IjUwIiBoZWlnaHQ9IjUwIiByeD0iNCIgZmlsbD0iIzAwN0FGRiIvPgo8dGV4dCB4PSIyNSIgeT0iMzAiIGZvbnQtZmFtaWx5PSJBcmlhbCIgZm9udC1zaXplPSIxMCIgZmlsbD0id2hpdGUiIHRleHQtYW5jaG9yPSJtaWRkbGUiPuWbvjE8L3RleHQ+Cjwvc3ZnPg=="
	redThumb   = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNTAiIGhlaWdodD0iNTAiIHZpZXdCb3g9IjAgMCA1MCA1MCIgZmlsbD0ibm9uZSIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj4KPHJlY3Qgd2lkdGg9IjUwIiBoZWlnaHQ9IjUwIiByeD0iNCIgZmlsbD0iI0ZGM0IzMCIvPgo8dGV4dCB4PSIyNSIgeT0iMzAiIGZvbnQtZmFtaWx5PSJBcmlhbCIgZm9udC1zaXplPSIxMCIgZmlsbD0id2hpdGUiIHRleHQtYW5jaG9yPSJtaWRkbGUiPuWbvjI8L3RleHQ+Cjwvc3ZnPg=="
	greenThumb = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNTAiIGhlaWdodD0iNTAiIHZpZXdCb3g9IjAgMCA1MCA1MCIgZmlsbD0ibm9uZSIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj4KPHJlY3Qgd2lkdGg9IjUwIiBoZWlnaHQ9IjUwIiByeD0iNCIgZmlsbD0iIzMwRDE1OCIvPgo8dGV4dCB4PSIyNSIgeT0iMzAiIGZvbnQtZmFtaWx5PSJBcmlhbCIgZm9udC1zaXplPSIxMCIgZmlsbD0id2hpdGUiIHRleHQtYW5jaG9yPSJtaWRkbGUiPuWbvjM8L3RleHQ+Cjwvc3ZnPg=="
)

// MockRecords returns a fresh copy of the three canned scrape results.
func MockRecords() []Record {
	return []Record{
		{Title: "Sample Product 1", Price: "¥299.00", Image: blueThumb, Link: "https://example.com/product1"},
		{Title: "Sample Product 2", Price: "¥399.00", Image: redThumb, Link: "https://example.com/product2"},
		{Title: "Sample Product 3", Price: "¥199.00", Image: greenThumb, Link: "https://example.com/product3"},
	}
}
